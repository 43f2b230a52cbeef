package catalog

// Reference data bundled with the server. Like the static topic content,
// these tables back the proof-system, network and cost tools when the live
// documentation is unreachable. Read-only after startup.

// ProofSystem describes one proof system verifiable on zkVerify.
type ProofSystem struct {
	Name             string
	Description      string
	ProofSize        string
	VerificationTime string
	Setup            string
	UseCases         string
}

// ProofSystems maps proof system identifiers to their reference entries.
var ProofSystems = map[string]ProofSystem{
	"groth16": {
		Name:             "Groth16",
		Description:      "Most widely used zkSNARK proof system",
		ProofSize:        "~200 bytes",
		VerificationTime: "~1-2ms",
		Setup:            "Requires trusted setup",
		UseCases:         "General-purpose zero-knowledge proofs",
	},
	"fflonk": {
		Name:             "Fflonk",
		Description:      "PLONK variant with improved efficiency",
		ProofSize:        "~400 bytes",
		VerificationTime: "~2-5ms",
		Setup:            "Universal trusted setup",
		UseCases:         "Modern zkEVM and complex circuits",
	},
	"risc0": {
		Name:             "RISC Zero",
		Description:      "General-purpose zkVM for Rust programs",
		ProofSize:        "~1-5KB",
		VerificationTime: "~10-50ms",
		Setup:            "Transparent (no trusted setup)",
		UseCases:         "Verifiable computation, any Rust code",
	},
}

// Network describes a zkVerify network environment.
type Network struct {
	Name      string
	Status    string
	RPCWS     string
	RPCHTTP   string
	Explorer  string
	Faucet    string
	BlockTime string
	Token     string
}

// Networks maps network identifiers to their reference entries.
var Networks = map[string]Network{
	"testnet": {
		Name:      "zkVerify Testnet (Volta)",
		Status:    "Active",
		RPCWS:     "wss://testnet-rpc.zkverify.io",
		RPCHTTP:   "https://testnet-rpc.zkverify.io",
		Explorer:  "https://zkverify-testnet.subscan.io/",
		Faucet:    "https://www.faucy.com/zkverify-volta",
		BlockTime: "6 seconds",
		Token:     "ACME",
	},
	"mainnet": {
		Name:   "zkVerify Mainnet",
		Status: "Coming Soon",
	},
}

// CostEntry holds estimated per-proof verification cost in USD per chain.
type CostEntry struct {
	ZkVerify float64
	Ethereum float64
	Polygon  float64
	Arbitrum float64
}

// VerificationCosts maps proof system identifiers to cost estimates.
var VerificationCosts = map[string]CostEntry{
	"groth16": {ZkVerify: 0.01, Ethereum: 0.50, Polygon: 0.05, Arbitrum: 0.08},
	"fflonk":  {ZkVerify: 0.02, Ethereum: 0.80, Polygon: 0.08, Arbitrum: 0.12},
	"risc0":   {ZkVerify: 0.05, Ethereum: 2.00, Polygon: 0.20, Arbitrum: 0.30},
}
