// Package mcp provides the MCP server surface for zkVerify documentation.
package mcp

// GetDocumentationInput defines the input for the get_documentation tool.
type GetDocumentationInput struct {
	// Topic is the documentation topic identifier.
	Topic string `json:"topic" jsonschema:"required,description=Documentation topic to retrieve (overview, architecture, sdk, tutorials, testnet, node-operators, contracts)"`
}

// GetDocumentationOutput contains the resolved documentation.
type GetDocumentationOutput struct {
	// Content is the formatted documentation text.
	Content string `json:"content"`
	// Topic is the resolved topic identifier.
	Topic string `json:"topic"`
	// Source is "live" when fetched from the docs site, "cached" when
	// served from the bundled copy.
	Source string `json:"source"`
	// SourceURL is the originating page for live content.
	SourceURL string `json:"source_url,omitempty"`
	// Truncated indicates the live content was cut at the length cap.
	Truncated bool `json:"truncated"`
}

// ListTopicsInput defines the input for the list_topics tool.
// The tool takes no parameters.
type ListTopicsInput struct{}

// TopicInfo describes one catalog entry.
type TopicInfo struct {
	// ID is the identifier accepted by get_documentation.
	ID string `json:"id"`
	// Title is the human-readable topic name.
	Title string `json:"title"`
	// HasLiveSource indicates whether the topic can be served live.
	HasLiveSource bool `json:"has_live_source"`
	// Sections lists the headings of the bundled copy.
	Sections []string `json:"sections"`
}

// ListTopicsOutput contains the topic catalog.
type ListTopicsOutput struct {
	Topics []TopicInfo `json:"topics"`
	Count  int         `json:"count"`
}

// ProofSystemInput defines the input for the get_proof_system_info tool.
type ProofSystemInput struct {
	// ProofType is the proof system identifier.
	ProofType string `json:"proof_type" jsonschema:"required,description=Proof system identifier (groth16, fflonk, risc0)"`
}

// ProofSystemOutput contains proof system details.
type ProofSystemOutput struct {
	Content   string `json:"content"`
	Source    string `json:"source"`
	SourceURL string `json:"source_url,omitempty"`
}

// NetworkInfoInput defines the input for the get_network_info tool.
type NetworkInfoInput struct {
	// Network selects the environment. Defaults to testnet.
	Network string `json:"network,omitempty" jsonschema:"description=Network to describe (testnet or mainnet),default=testnet"`
}

// NetworkInfoOutput contains network connection details.
type NetworkInfoOutput struct {
	Content   string `json:"content"`
	Source    string `json:"source"`
	SourceURL string `json:"source_url,omitempty"`
}

// SDKCodeInput defines the input for the generate_sdk_code tool.
type SDKCodeInput struct {
	// Operation selects the example to generate.
	Operation string `json:"operation" jsonschema:"required,description=SDK operation (connect, submit_proof, check_status, register_vk, batch_submit)"`
	// Language selects the SDK language. Only typescript is available.
	Language string `json:"language,omitempty" jsonschema:"description=Example language,default=typescript"`
}

// SDKCodeOutput contains the generated example.
type SDKCodeOutput struct {
	Code      string `json:"code"`
	Operation string `json:"operation"`
	Language  string `json:"language"`
}

// CostInput defines the input for the calculate_verification_cost tool.
type CostInput struct {
	// ProofSystem selects which cost table entry to use.
	ProofSystem string `json:"proof_system" jsonschema:"required,description=Proof system identifier (groth16, fflonk, risc0)"`
	// NumProofs is the number of proofs to estimate for.
	NumProofs int `json:"num_proofs,omitempty" jsonschema:"minimum=1,maximum=10000,default=1,description=Number of proofs to estimate"`
}

// CostOutput contains the cost comparison.
type CostOutput struct {
	Content string `json:"content"`
}
