package main

import (
	"context"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/itemforge/internal/config"
	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
	"github.com/KirkDiggler/itemforge/internal/loader"
	"github.com/KirkDiggler/itemforge/internal/orchestrators/forge"
	"github.com/KirkDiggler/itemforge/internal/tooltip"
)

var (
	buildPath    string
	buildID      string
	buildAmount  int
	buildColour  bool
	buildDump    bool
	buildPreview bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build items from YAML templates without a server",
	Long: `Load templates from a YAML file or directory into an embedded store and
build them, printing each item's tooltip.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildPath, "file", "f", "", "Template file or directory (required)")
	buildCmd.Flags().StringVar(&buildID, "id", "", "Only build the template with this ID")
	buildCmd.Flags().IntVar(&buildAmount, "amount", 0, "Override the template amount")
	buildCmd.Flags().BoolVar(&buildColour, "colour", false, "Colour tooltips with ANSI escapes")
	buildCmd.Flags().BoolVar(&buildDump, "dump", false, "Dump the built item summaries")
	buildCmd.Flags().BoolVar(&buildPreview, "preview", false, "Show the tooltips in a terminal screen")
	_ = buildCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init
}

func runBuild(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	tmpls, err := loadTemplates(buildPath)
	if err != nil {
		return err
	}

	cfg := &config.Config{RedisAddr: config.RedisAddrEmbedded}
	client, cleanup, err := connectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	svc, err := newForgeService(client, cfg, nil)
	if err != nil {
		return err
	}

	if _, err := loader.Sync(ctx, svc, tmpls); err != nil {
		return err
	}

	var stacks []item.Stack
	for _, t := range tmpls {
		if buildID != "" && t.ID != buildID {
			continue
		}

		out, err := svc.BuildItem(ctx, &forge.BuildItemInput{
			TemplateID: t.ID,
			Amount:     buildAmount,
		})
		if err != nil {
			return fmt.Errorf("failed to build %s: %w", t.ID, err)
		}
		stacks = append(stacks, out.Item.Stack)

		fmt.Printf("%s\n%s", t.ID, tooltip.Text(out.Item.Stack, buildColour))
		if buildDump {
			spew.Dump(out.Item.Summary)
		}
	}

	if len(stacks) == 0 {
		return fmt.Errorf("no template with id %q in %s", buildID, buildPath)
	}

	if buildPreview {
		return preview(stacks)
	}
	return nil
}

// loadTemplates reads a single file or a whole directory. Templates from a
// single file may omit IDs; they are named after their position.
func loadTemplates(path string) ([]*itemdef.Template, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if info.IsDir() {
		return loader.LoadDir(path)
	}

	tmpls, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	for i, t := range tmpls {
		if t.ID == "" {
			t.ID = fmt.Sprintf("template-%d", i+1)
		}
	}
	return tmpls, nil
}

// preview lays the tooltips out left to right, wrapping at the screen
// edge, until a key is pressed
func preview(stacks []item.Stack) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	for {
		drawPreview(screen, stacks)

		switch screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func drawPreview(screen tcell.Screen, stacks []item.Stack) {
	screen.Clear()

	maxW, _ := screen.Size()
	x, y, rowHeight := 1, 1, 0
	for _, stack := range stacks {
		w, h := tooltip.Size(stack)
		if x > 1 && x+w > maxW {
			x, y, rowHeight = 1, y+rowHeight+1, 0
		}
		tooltip.Draw(screen, x, y, stack)
		x += w + 1
		rowHeight = max(rowHeight, h)
	}

	screen.Show()
}
