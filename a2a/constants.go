// Copyright 2025 The Go A2A Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package a2a provides the A2A v0.3.0 wire types exchanged by this agent:
// the agent card, messages with their kind-discriminated part union, tasks,
// and the JSON-RPC 2.0 envelopes that carry them.
package a2a

const (
	// AgentCardWellKnownPath is the well-known path for agent card discovery.
	AgentCardWellKnownPath = "/.well-known/agent-card.json"

	// JSONRPCPath is the path serving the JSON-RPC endpoint.
	JSONRPCPath = "/a2a/jsonrpc"

	// HealthzPath is the path serving the liveness probe.
	HealthzPath = "/healthz"

	// ProtocolVersion is the A2A protocol version this agent speaks.
	ProtocolVersion = "0.3.0"
)

// Kind discriminators for the top-level wire objects.
const (
	// KindMessage marks a message object.
	KindMessage = "message"

	// KindTask marks a task object.
	KindTask = "task"
)
