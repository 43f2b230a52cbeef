package mcp

import (
	"fmt"
	"strings"

	"github.com/zkverify-community/docs-mcp/internal/catalog"
	"github.com/zkverify-community/docs-mcp/internal/docs"
)

// renderProofSystem renders the bundled reference entry for a proof system.
func renderProofSystem(system catalog.ProofSystem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Proof System (Cached/offline data)\n\n", system.Name)
	fmt.Fprintf(&b, "**Description**: %s\n", system.Description)
	fmt.Fprintf(&b, "**Use Cases**: %s\n", system.UseCases)
	fmt.Fprintf(&b, "**Proof Size**: %s\n", system.ProofSize)
	fmt.Fprintf(&b, "**Verification Time**: %s\n", system.VerificationTime)
	fmt.Fprintf(&b, "**Setup**: %s\n\n", system.Setup)
	b.WriteString("Supported natively by zkVerify verification pallets.\n\n")
	b.WriteString("Note: served from bundled documentation. For the latest version visit https://docs.zkverify.io/")
	return b.String()
}

// renderProofSystemLive wraps live architecture content that mentions the
// requested proof system.
func renderProofSystemLive(system catalog.ProofSystem, answer *docs.ResolvedAnswer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Proof System (Live from docs.zkverify.io)\n\n", system.Name)
	b.WriteString(answer.Text)
	if answer.Truncated {
		b.WriteString("\n\n... (content truncated)")
	}
	b.WriteString("\n\nSource: " + answer.SourceURL)
	return b.String()
}

// renderNetwork renders the bundled reference entry for a network.
func renderNetwork(network catalog.Network) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (Cached/offline data)\n\n", network.Name)
	fmt.Fprintf(&b, "**Status**: %s\n", network.Status)

	if network.RPCWS == "" {
		// Mainnet has no endpoints yet; point at the testnet instead.
		b.WriteString("\nUse the testnet for development and testing. ")
		b.WriteString("Launch announcements are posted on Discord: https://discord.gg/zkverify\n")
		return b.String()
	}

	b.WriteString("\n**RPC Endpoints**:\n")
	fmt.Fprintf(&b, "- WebSocket: %s\n", network.RPCWS)
	fmt.Fprintf(&b, "- HTTP: %s\n\n", network.RPCHTTP)
	fmt.Fprintf(&b, "**Block Explorer**: %s\n", network.Explorer)
	fmt.Fprintf(&b, "**Faucet**: %s\n\n", network.Faucet)
	b.WriteString("**Network Details**:\n")
	fmt.Fprintf(&b, "- Native Token: %s\n", network.Token)
	fmt.Fprintf(&b, "- Block Time: %s\n", network.BlockTime)
	b.WriteString("- Finality: Instant (GRANDPA consensus)\n\n")
	b.WriteString("Note: served from bundled documentation. For the latest version visit https://docs.zkverify.io/")
	return b.String()
}

// renderCostComparison renders the verification cost estimate for count
// proofs of the given system across chains.
func renderCostComparison(id string, count int, cost catalog.CostEntry) string {
	zkv := cost.ZkVerify * float64(count)
	eth := cost.Ethereum * float64(count)
	poly := cost.Polygon * float64(count)
	arb := cost.Arbitrum * float64(count)

	savings := func(other float64) float64 {
		return (other - zkv) / other * 100
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Cost Comparison for %d %s proof(s)\n\n", count, strings.ToUpper(id))
	fmt.Fprintf(&b, "- zkVerify: $%.2f\n", zkv)
	fmt.Fprintf(&b, "- Ethereum: $%.2f (%.0f%% more expensive)\n", eth, savings(eth))
	fmt.Fprintf(&b, "- Polygon: $%.2f (%.0f%% more expensive)\n", poly, savings(poly))
	fmt.Fprintf(&b, "- Arbitrum: $%.2f (%.0f%% more expensive)\n\n", arb, savings(arb))
	fmt.Fprintf(&b, "Savings vs Ethereum: $%.2f (%.0f%% reduction)\n\n", eth-zkv, savings(eth))
	b.WriteString("Note: costs are cached estimates and vary with gas prices, proof complexity and network conditions.")
	return b.String()
}
