package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/chess10kp/ecws/internal/config"
	"github.com/chess10kp/ecws/internal/launcher"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Width(24)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

func main() {
	configPath := config.DefaultPath()
	if len(os.Args) > 1 {
		configPath = config.ExpandPath(os.Args[1])
	}

	fmt.Println(titleStyle.Render("Validating config: " + configPath))

	issues, err := config.ValidateConfig(configPath)
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ %v", err)))
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(configPath)
	if err == nil {
		printLayout(cfg)
	}

	for _, issue := range issues {
		style := warningStyle
		if issue.Severity == config.SeverityError {
			style = errorStyle
		}
		fmt.Printf("%s %s %s\n", style.Render(fmt.Sprintf("%-7s", issue.Severity)), keyStyle.Render(issue.Key), issue.Message)
	}

	if config.HasErrors(issues) {
		fmt.Println(errorStyle.Render("❌ Config validation failed"))
		os.Exit(1)
	}

	fmt.Println(okStyle.Render("✅ Config is valid!"))
}

func printLayout(cfg *config.Config) {
	plan := launcher.PlanGrid(len(cfg.Entries), cfg.App.MaxColumns)
	fmt.Println(dimStyle.Render(fmt.Sprintf("%d entries, %d x %d grid, window %dx%d, screen %d",
		len(cfg.Entries), plan.Columns, plan.Rows, plan.Width, plan.Height, cfg.App.ScreenIndex)))

	for _, tile := range launcher.ArrangeTiles(cfg.Entries, cfg.App.MaxColumns) {
		accel := " "
		if launcher.HasAccelKey(tile.Accel) {
			accel = fmt.Sprint(tile.Accel)
		}
		fmt.Printf("  [%s] %s %s\n", accel, keyStyle.Render(tile.Entry.Name), dimStyle.Render(tile.Entry.Workspace))
	}
}
