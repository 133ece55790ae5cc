package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"ai-travel-buddy/internal/app"
	"ai-travel-buddy/internal/config"
	"ai-travel-buddy/internal/travel"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; real environments set variables directly.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer application.Close()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "onboard":
		onboardCmd := flag.NewFlagSet("onboard", flag.ExitOnError)
		budget := onboardCmd.String("budget", string(travel.BudgetModerate), "Budget: economy, moderate or luxury")
		style := onboardCmd.String("style", string(travel.PaceChilled), "Travel style: chilled or packed")
		activities := onboardCmd.String("activities", "", "Comma-separated favorite activity types")
		safety := onboardCmd.Int("safety", 3, "Safety comfort level (1-5)")
		onboardCmd.Parse(os.Args[2:])

		application.Onboard(travel.UserPreferences{
			Budget:        travel.Budget(*budget),
			Activities:    splitList(*activities),
			TravelStyle:   travel.Pace(*style),
			SafetyComfort: *safety,
		})
	case "plan":
		planCmd := flag.NewFlagSet("plan", flag.ExitOnError)
		destination := planCmd.String("destination", "", "Where to go")
		from := planCmd.String("from", "", "Start date (YYYY-MM-DD)")
		to := planCmd.String("to", "", "End date (YYYY-MM-DD)")
		planCmd.Parse(os.Args[2:])

		if *destination == "" || *from == "" || *to == "" {
			log.Fatal("plan requires -destination, -from and -to")
		}
		if err := application.PlanTrip(ctx, *destination, travel.DateRange{From: *from, To: *to}); err != nil {
			log.Fatalf("Planning failed: %v", err)
		}
	case "chat":
		if len(os.Args) < 3 {
			log.Fatal("chat requires a message")
		}
		if err := application.Chat(ctx, strings.Join(os.Args[2:], " ")); err != nil {
			log.Fatalf("Chat failed: %v", err)
		}
	case "add-to-itinerary":
		if err := application.AddLastRichCard(); err != nil {
			log.Fatalf("Add failed: %v", err)
		}
	case "itinerary":
		if err := application.ShowItinerary(); err != nil {
			log.Fatalf("Failed to show itinerary: %v", err)
		}
	case "map":
		mapCmd := flag.NewFlagSet("map", flag.ExitOnError)
		day := mapCmd.Int("day", 1, "Day number to map")
		mapCmd.Parse(os.Args[2:])

		if err := application.ShowMap(*day); err != nil {
			log.Fatalf("Failed to show map: %v", err)
		}
	case "safety":
		if err := application.ShowSafety(ctx); err != nil {
			log.Fatalf("Failed to show safety info: %v", err)
		}
	case "translate":
		if len(os.Args) < 3 {
			log.Fatal("translate requires a phrase")
		}
		if err := application.Translate(ctx, strings.Join(os.Args[2:], " ")); err != nil {
			log.Fatalf("Translation failed: %v", err)
		}
	case "tips":
		tipsCmd := flag.NewFlagSet("tips", flag.ExitOnError)
		asHTML := tipsCmd.Bool("html", false, "Render the tips as HTML")
		tipsCmd.Parse(os.Args[2:])

		if err := application.CulturalTips(ctx, *asHTML); err != nil {
			log.Fatalf("Failed to fetch tips: %v", err)
		}
	case "inspire":
		application.Inspire(ctx)
	case "alerts":
		application.ShowAlerts()
	case "disrupt":
		if len(os.Args) < 3 {
			log.Fatal("disrupt requires an alert id")
		}
		application.Disrupt(ctx, os.Args[2])
	case "accept":
		acceptCmd := flag.NewFlagSet("accept", flag.ExitOnError)
		alertID := acceptCmd.String("alert", "", "Alert id")
		number := acceptCmd.Int("n", 1, "Alternative number (1-based)")
		acceptCmd.Parse(os.Args[2:])

		if *alertID == "" {
			log.Fatal("accept requires -alert")
		}
		if err := application.Accept(*alertID, *number); err != nil {
			log.Fatalf("Accept failed: %v", err)
		}
	case "trips":
		application.ShowTrips()
	case "open":
		if len(os.Args) < 3 {
			log.Fatal("open requires a trip id")
		}
		application.Manager().SetActiveTrip(os.Args[2])
	case "home":
		application.Manager().ClearActiveTrip()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func printUsage() {
	fmt.Println("Usage: ai-travel-buddy <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  onboard            Save travel preferences (-budget, -style, -activities, -safety)")
	fmt.Println("  plan               Generate an itinerary (-destination, -from, -to)")
	fmt.Println("  chat               Send a message to the travel assistant")
	fmt.Println("  add-to-itinerary   Add the last recommendation card to the itinerary")
	fmt.Println("  itinerary          Show the active trip's itinerary")
	fmt.Println("  map                Show map pin positions for a day (-day)")
	fmt.Println("  safety             Show safety info for the destination")
	fmt.Println("  translate          Translate a phrase into the local language")
	fmt.Println("  tips               Show cultural etiquette tips (-html)")
	fmt.Println("  inspire            Suggest trip destinations")
	fmt.Println("  alerts             List disruption alerts")
	fmt.Println("  disrupt            Fetch alternatives for an alert")
	fmt.Println("  accept             Accept an alternative (-alert, -n)")
	fmt.Println("  trips              List saved trips")
	fmt.Println("  open               Open a trip by id")
	fmt.Println("  home               Return to the home screen")
}
