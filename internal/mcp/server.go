package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zkverify-community/docs-mcp/internal/docs"
	"github.com/zkverify-community/docs-mcp/internal/markdown"
)

// Server wraps the MCP server with its dependencies.
type Server struct {
	server   *mcp.Server
	resolver *docs.Resolver
}

// Config holds server dependencies.
type Config struct {
	Resolver *docs.Resolver
	Outliner *markdown.Outliner
}

// NewServer creates a configured MCP server with tools registered.
func NewServer(cfg *Config) *Server {
	impl := &mcp.Implementation{
		Name:    "zkverify-docs-server",
		Version: "v0.1.0",
	}

	server := mcp.NewServer(impl, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_documentation",
		Description: "Get zkVerify documentation for a topic. Fetches the live docs site and falls back to a bundled copy when the site is unreachable; the response states which source served it.",
	}, makeGetDocumentationHandler(cfg.Resolver))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_topics",
		Description: "List all available zkVerify documentation topics with their section outlines.",
	}, makeListTopicsHandler(cfg.Resolver, cfg.Outliner))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_proof_system_info",
		Description: "Get details about a proof system supported by zkVerify (groth16, fflonk, risc0).",
	}, makeProofSystemHandler(cfg.Resolver))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_network_info",
		Description: "Get zkVerify network information including RPC endpoints, explorer and faucet links.",
	}, makeNetworkInfoHandler(cfg.Resolver))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_sdk_code",
		Description: "Generate example code for common zkVerify SDK operations (connect, submit_proof, check_status, register_vk, batch_submit).",
	}, makeSDKCodeHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "calculate_verification_cost",
		Description: "Estimate proof verification cost on zkVerify versus native verification on Ethereum, Polygon and Arbitrum.",
	}, makeCostHandler())

	return &Server{
		server:   server,
		resolver: cfg.Resolver,
	}
}

// Run starts the server with stdio transport (blocks until client disconnects).
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server instance.
// Used by transport handlers that need to wrap the server.
func (s *Server) MCPServer() *mcp.Server {
	return s.server
}
