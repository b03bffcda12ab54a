package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: mcp-client <server-command> [<args>]")
		fmt.Fprintln(os.Stderr, "Example: mcp-client ./indicator-mcp")
		os.Exit(2)
	}

	ctx := context.Background()

	// Start the server as a subprocess
	cmd := exec.Command(args[0], args[1:]...)
	transport := &mcp.CommandTransport{Command: cmd}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "scrollindicator-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer session.Close()

	fmt.Println("Connected to scroll indicator MCP server!")
	fmt.Println("Available commands:")
	fmt.Println("  /tools                              - List available tools")
	fmt.Println("  /geometry <content> <visible>       - Indicator length and travel")
	fmt.Println("  /frame <content> <visible> <offset> - Offset, scale and drawn span")
	fmt.Println("  /location <position> [orthogonal]   - Crosswise placement")
	fmt.Println("  /drag <content> <visible> <delta>   - Drag the indicator")
	fmt.Println("  /exit                               - Exit the client")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		parts := strings.Fields(input)

		switch parts[0] {
		case "/exit":
			fmt.Println("Goodbye!")
			return

		case "/tools":
			listTools(ctx, session)

		case "/geometry":
			if nums, ok := numbers(parts[1:], 2); ok {
				callTool(ctx, session, "indicator_geometry", map[string]any{
					"content_size": nums[0],
					"visible_size": nums[1],
				})
			}

		case "/frame":
			if nums, ok := numbers(parts[1:], 3); ok {
				callTool(ctx, session, "indicator_frame", map[string]any{
					"content_size": nums[0],
					"visible_size": nums[1],
					"offset":       nums[2],
				})
			}

		case "/location":
			if len(parts) < 2 {
				fmt.Println("Usage: /location <position> [orthogonal]")
				continue
			}
			args := map[string]any{
				"content_size": 1000,
				"visible_size": 200,
				"position":     parts[1],
			}
			if nums, ok := numbers(parts[2:], 1); ok {
				args["orthogonal_size"] = nums[0]
			}
			callTool(ctx, session, "indicator_location", args)

		case "/drag":
			if nums, ok := numbers(parts[1:], 3); ok {
				callTool(ctx, session, "indicator_drag", map[string]any{
					"content_size": nums[0],
					"visible_size": nums[1],
					"delta":        nums[2],
				})
			}

		default:
			fmt.Printf("Unknown command: %s\n", parts[0])
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Scanner error: %v", err)
	}
}

// numbers parses exactly n leading fields as floats.
func numbers(fields []string, n int) ([]float64, bool) {
	if len(fields) < n {
		if n > 1 {
			fmt.Printf("Expected %d numbers\n", n)
		}
		return nil, false
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			fmt.Printf("Not a number: %s\n", fields[i])
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func listTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("Available Tools:")
	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			log.Printf("Error listing tools: %v", err)
			return
		}
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
	fmt.Println()
}

func callTool(ctx context.Context, session *mcp.ClientSession, toolName string, args map[string]any) {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		log.Printf("Error calling tool: %v", err)
		return
	}

	printResult(result)
}

func printResult(result *mcp.CallToolResult) {
	if result.IsError {
		fmt.Printf("Error: ")
	} else {
		fmt.Printf("Result: ")
	}

	if result.StructuredContent != nil {
		if jsonData, err := json.MarshalIndent(result.StructuredContent, "", "  "); err == nil {
			fmt.Println(string(jsonData))
			fmt.Println()
			return
		}
	}
	for _, content := range result.Content {
		switch v := content.(type) {
		case *mcp.TextContent:
			fmt.Println(v.Text)
		default:
			jsonData, err := json.MarshalIndent(content, "", "  ")
			if err != nil {
				fmt.Printf("%+v\n", content)
			} else {
				fmt.Println(string(jsonData))
			}
		}
	}
	fmt.Println()
}
