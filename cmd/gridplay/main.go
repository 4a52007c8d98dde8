// Command gridplay is an interactive terminal session against the grid
// engine: one user, one domain, moves and learning typed on stdin.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"lucidia-engine/application/commands"
	"lucidia-engine/domain/core/aggregates"
	"lucidia-engine/domain/naming"
	"lucidia-engine/infrastructure/config"
	"lucidia-engine/infrastructure/di"
	"lucidia-engine/pkg/render"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize dependency container
	container, err := di.InitializeContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Logger.Sync()

	userID := flagOr(1, "player")
	domain := flagOr(2, "python")

	engine := container.Engine

	grid, err := engine.GetOrCreateGrid(ctx, commands.GetOrCreateGridCommand{
		UserID: userID,
		Domain: domain,
	})
	if err != nil {
		container.Logger.Fatal("Failed to create grid", zap.Error(err))
	}

	fmt.Printf("Knowledge grid for %s in %s. Commands: up/down/left/right (or u/d/l/r), learn <concept>, history, stats, reset, quit.\n", userID, domain)
	fmt.Println("Domains with a dedicated vocabulary:", strings.Join(naming.KnownDomains(), ", "))
	printGrid(grid)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "quit", "q", "exit":
			return

		case "up", "down", "left", "right", "u", "d", "l", "r":
			result, err := engine.ApplyMove(ctx, commands.MoveCommand{
				UserID:    userID,
				Domain:    domain,
				Direction: expandDirection(fields[0]),
			})
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			for _, merge := range result.Merges {
				fmt.Printf("merged %s + %s -> %s (%d)\n",
					merge.FirstConcept, merge.SecondConcept, merge.ResultConcept, merge.ResultValue)
				if merge.Insight != "" {
					fmt.Println("  ", merge.Insight)
				}
			}
			printGrid(result.Grid)

		case "learn":
			if len(fields) < 2 {
				fmt.Println("usage: learn <concept>")
				continue
			}
			result, err := engine.Learn(ctx, commands.LearnCommand{
				UserID:  userID,
				Domain:  domain,
				Concept: strings.Join(fields[1:], " "),
			})
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			if result.Tile == nil {
				fmt.Println("grid is full; nothing learned")
			} else {
				fmt.Printf("learned %s (%d) at %s\n",
					result.Tile.Concept(), result.Tile.Value(), result.Tile.Position())
			}
			printGrid(result.Grid)

		case "history":
			for _, merge := range container.EventLog.MergeHistory(userID, domain, 10) {
				fmt.Printf("%s + %s -> %s (%d)\n",
					merge.FirstConcept, merge.SecondConcept, merge.ResultConcept, merge.ResultValue)
				if merge.Insight != "" {
					fmt.Printf("  %s\n", merge.Insight)
				}
			}

		case "stats":
			stats, err := container.Stats.GetStats(ctx, userID)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Printf("domains %d  tiles %d  score %d  merges %d  highest %d (%s)\n",
				stats.TotalDomains, stats.TotalTiles, stats.TotalScore,
				stats.TotalMerges, stats.HighestTileEver, stats.HighestTileDomain)
			if len(stats.DomainsMastered) > 0 {
				fmt.Println("mastered:", strings.Join(stats.DomainsMastered, ", "))
			}

		case "reset":
			grid, err := engine.ResetGrid(ctx, commands.ResetGridCommand{UserID: userID, Domain: domain})
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			printGrid(grid)

		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}

func printGrid(grid *aggregates.Grid) {
	fmt.Println(render.ASCII(grid))
	fmt.Printf("score %d  highest %d  moves %d\n", grid.Score(), grid.HighestTile(), grid.MoveCount())
	if grid.HasWon() {
		fmt.Println("domain mastered!")
	}
	if grid.IsGameOver() {
		fmt.Println("no moves left; learn something new or reset")
	}
}

func expandDirection(s string) string {
	switch s {
	case "u":
		return "up"
	case "d":
		return "down"
	case "l":
		return "left"
	case "r":
		return "right"
	default:
		return s
	}
}

func flagOr(index int, fallback string) string {
	if len(os.Args) > index && os.Args[index] != "" {
		return os.Args[index]
	}
	return fallback
}
