package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zkverify-community/docs-mcp/internal/catalog"
	"github.com/zkverify-community/docs-mcp/internal/docs"
	"github.com/zkverify-community/docs-mcp/internal/markdown"
)

// makeGetDocumentationHandler creates the get_documentation tool handler.
// Resolution flow:
// 1. Look up the topic in the fixed catalog
// 2. Resolve through the live/cached cascade (at most one fetch)
// 3. Format with the source banner and return structured metadata
func makeGetDocumentationHandler(resolver *docs.Resolver) func(
	context.Context, *mcp.CallToolRequest, GetDocumentationInput,
) (*mcp.CallToolResult, GetDocumentationOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetDocumentationInput) (
		*mcp.CallToolResult, GetDocumentationOutput, error,
	) {
		topic, err := resolver.Lookup(input.Topic)
		if err != nil {
			return nil, GetDocumentationOutput{}, fmt.Errorf(
				"unknown topic %q, available topics: %s",
				input.Topic, strings.Join(topicIDs(resolver), ", "),
			)
		}

		answer := resolver.Resolve(ctx, topic)

		return nil, GetDocumentationOutput{
			Content:   docs.Format(answer, topic),
			Topic:     topic.ID,
			Source:    string(answer.Source),
			SourceURL: answer.SourceURL,
			Truncated: answer.Truncated,
		}, nil
	}
}

// makeListTopicsHandler creates the list_topics tool handler.
// Section outlines come from the bundled copies, so listing topics never
// touches the network.
func makeListTopicsHandler(resolver *docs.Resolver, outliner *markdown.Outliner) func(
	context.Context, *mcp.CallToolRequest, ListTopicsInput,
) (*mcp.CallToolResult, ListTopicsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListTopicsInput) (
		*mcp.CallToolResult, ListTopicsOutput, error,
	) {
		topics := resolver.Topics()
		infos := make([]TopicInfo, 0, len(topics))
		for _, topic := range topics {
			sections, err := outliner.Outline([]byte(resolver.StaticText(topic)))
			if err != nil {
				return nil, ListTopicsOutput{}, fmt.Errorf("outline topic %s: %w", topic.ID, err)
			}
			titles := make([]string, 0, len(sections))
			for _, s := range sections {
				titles = append(titles, s.Title)
			}
			infos = append(infos, TopicInfo{
				ID:            topic.ID,
				Title:         topic.Title,
				HasLiveSource: topic.RemotePath != "",
				Sections:      titles,
			})
		}

		return nil, ListTopicsOutput{Topics: infos, Count: len(infos)}, nil
	}
}

// makeProofSystemHandler creates the get_proof_system_info tool handler.
// It reuses the architecture topic's live page when it mentions the proof
// system, otherwise it renders the bundled reference entry.
func makeProofSystemHandler(resolver *docs.Resolver) func(
	context.Context, *mcp.CallToolRequest, ProofSystemInput,
) (*mcp.CallToolResult, ProofSystemOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ProofSystemInput) (
		*mcp.CallToolResult, ProofSystemOutput, error,
	) {
		id := strings.ToLower(strings.TrimSpace(input.ProofType))
		system, ok := catalog.ProofSystems[id]
		if !ok {
			return nil, ProofSystemOutput{}, fmt.Errorf(
				"unknown proof system %q, available: %s", input.ProofType, proofSystemIDs(),
			)
		}

		if topic, err := resolver.Lookup("architecture"); err == nil {
			answer := resolver.Resolve(ctx, topic)
			if answer.Source == docs.SourceLive &&
				strings.Contains(strings.ToLower(answer.Text), id) {
				return nil, ProofSystemOutput{
					Content:   renderProofSystemLive(system, answer),
					Source:    string(answer.Source),
					SourceURL: answer.SourceURL,
				}, nil
			}
		}

		return nil, ProofSystemOutput{
			Content: renderProofSystem(system),
			Source:  string(docs.SourceCached),
		}, nil
	}
}

// makeNetworkInfoHandler creates the get_network_info tool handler.
func makeNetworkInfoHandler(resolver *docs.Resolver) func(
	context.Context, *mcp.CallToolRequest, NetworkInfoInput,
) (*mcp.CallToolResult, NetworkInfoOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input NetworkInfoInput) (
		*mcp.CallToolResult, NetworkInfoOutput, error,
	) {
		id := strings.ToLower(strings.TrimSpace(input.Network))
		if id == "" {
			id = "testnet"
		}
		network, ok := catalog.Networks[id]
		if !ok {
			return nil, NetworkInfoOutput{}, fmt.Errorf(
				"unknown network %q, available: testnet, mainnet", input.Network,
			)
		}

		// Only the testnet has a docs page worth fetching live.
		if id == "testnet" {
			if topic, err := resolver.Lookup("testnet"); err == nil {
				answer := resolver.Resolve(ctx, topic)
				if answer.Source == docs.SourceLive {
					return nil, NetworkInfoOutput{
						Content:   docs.Format(answer, topic),
						Source:    string(answer.Source),
						SourceURL: answer.SourceURL,
					}, nil
				}
			}
		}

		return nil, NetworkInfoOutput{
			Content: renderNetwork(network),
			Source:  string(docs.SourceCached),
		}, nil
	}
}

// makeSDKCodeHandler creates the generate_sdk_code tool handler.
// Examples are bundled reference text; no live fetch is involved.
func makeSDKCodeHandler() func(
	context.Context, *mcp.CallToolRequest, SDKCodeInput,
) (*mcp.CallToolResult, SDKCodeOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SDKCodeInput) (
		*mcp.CallToolResult, SDKCodeOutput, error,
	) {
		language := strings.ToLower(strings.TrimSpace(input.Language))
		if language == "" {
			language = "typescript"
		}
		if language != "typescript" {
			return nil, SDKCodeOutput{}, fmt.Errorf(
				"only typescript examples are available, requested %q", input.Language,
			)
		}

		operation := strings.ToLower(strings.TrimSpace(input.Operation))
		code, ok := catalog.SDKExamples[operation]
		if !ok {
			return nil, SDKCodeOutput{}, fmt.Errorf(
				"unknown operation %q, available: %s", input.Operation, sdkOperations(),
			)
		}

		return nil, SDKCodeOutput{
			Code:      code,
			Operation: operation,
			Language:  language,
		}, nil
	}
}

// makeCostHandler creates the calculate_verification_cost tool handler.
func makeCostHandler() func(
	context.Context, *mcp.CallToolRequest, CostInput,
) (*mcp.CallToolResult, CostOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CostInput) (
		*mcp.CallToolResult, CostOutput, error,
	) {
		id := strings.ToLower(strings.TrimSpace(input.ProofSystem))
		cost, ok := catalog.VerificationCosts[id]
		if !ok {
			return nil, CostOutput{}, fmt.Errorf(
				"unknown proof system %q, available: %s", input.ProofSystem, proofSystemIDs(),
			)
		}

		count := input.NumProofs
		if count < 1 {
			count = 1
		}
		if count > 10000 {
			count = 10000
		}

		return nil, CostOutput{Content: renderCostComparison(id, count, cost)}, nil
	}
}

func topicIDs(resolver *docs.Resolver) []string {
	topics := resolver.Topics()
	ids := make([]string, len(topics))
	for i, t := range topics {
		ids[i] = t.ID
	}
	return ids
}

func proofSystemIDs() string {
	ids := make([]string, 0, len(catalog.ProofSystems))
	for id := range catalog.ProofSystems {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return strings.Join(ids, ", ")
}

func sdkOperations() string {
	ops := make([]string, 0, len(catalog.SDKExamples))
	for op := range catalog.SDKExamples {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return strings.Join(ops, ", ")
}
