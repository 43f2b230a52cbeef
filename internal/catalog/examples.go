package catalog

// SDKExamples holds the bundled TypeScript examples served by the
// generate_sdk_code tool, keyed by operation name.
var SDKExamples = map[string]string{
	"connect": "```typescript\n" + `import { ZkVerifyClient } from '@zkverify/js-sdk';

// Connect to testnet
const client = new ZkVerifyClient({
  endpoint: 'wss://testnet-rpc.zkverify.io',
  seed: 'your-seed-phrase' // Optional for read-only operations
});

await client.connect();
console.log('Connected to zkVerify testnet');

const chainInfo = await client.getChainInfo();
console.log('Chain:', chainInfo.name);
console.log('Block height:', chainInfo.blockHeight);
` + "```" + `

Notes:
- Use the WebSocket endpoint for real-time updates
- The seed phrase is only needed for transactions`,

	"submit_proof": "```typescript\n" + `import { ZkVerifyClient } from '@zkverify/js-sdk';

const client = new ZkVerifyClient({
  endpoint: 'wss://testnet-rpc.zkverify.io',
  seed: 'your-seed-phrase' // Required for submission
});

await client.connect();

const result = await client.submitProof({
  proofType: 'groth16',
  proof: proof,
  publicInputs: publicInputs,
  vk: vk
});

console.log('Transaction hash:', result.hash);
console.log('Proof hash:', result.proofHash);
` + "```" + `

Notes:
- Ensure the proof format matches your proof system
- Public inputs must be in the correct order
- The VK can be pre-registered (see register_vk)`,

	"check_status": "```typescript\n" + `import { ZkVerifyClient } from '@zkverify/js-sdk';

const client = new ZkVerifyClient({
  endpoint: 'wss://testnet-rpc.zkverify.io'
});

await client.connect();

const status = await client.getProofStatus(proofHash);
console.log('Proof status:', status.status);

const unsubscribe = client.watchProof(proofHash, (update) => {
  if (update.status === 'verified') {
    console.log('Verified in block', update.blockNumber);
    unsubscribe();
  }
  if (update.status === 'failed') {
    console.log('Verification failed:', update.error);
    unsubscribe();
  }
});
` + "```" + `

Status values: pending, processing, verified, failed`,

	"register_vk": "```typescript\n" + `import { ZkVerifyClient } from '@zkverify/js-sdk';

const client = new ZkVerifyClient({
  endpoint: 'wss://testnet-rpc.zkverify.io',
  seed: 'your-seed-phrase'
});

await client.connect();

// One-time operation per verification key
const vkHash = await client.registerVK({
  vk: verificationKey,
  proofSystem: 'groth16'
});

// Later submissions reference the hash instead of the full key
const result = await client.submitProof({
  proofType: 'groth16',
  proof: myProof,
  publicInputs: myInputs,
  vkHash: vkHash
});
` + "```" + `

Benefits: smaller transactions and lower fees for repeat submissions`,

	"batch_submit": "```typescript\n" + `import { ZkVerifyClient } from '@zkverify/js-sdk';

const client = new ZkVerifyClient({
  endpoint: 'wss://testnet-rpc.zkverify.io',
  seed: 'your-seed-phrase'
});

await client.connect();

const batch = [
  { proofType: 'groth16', proof: proof1, publicInputs: inputs1, vk: vk1 },
  { proofType: 'groth16', proof: proof2, publicInputs: inputs2, vk: vk2 },
  { proofType: 'fflonk', proof: proof3, publicInputs: inputs3, vk: vk3 }
];

const results = await client.submitBatch(batch);

const statuses = await Promise.all(
  results.map((r) => client.waitForVerification(r.proofHash))
);
console.log('All proofs verified');
` + "```" + `

Advantages: amortized fees, a single transaction, atomic verification`,
}
