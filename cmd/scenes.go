package cmd

import (
	"bytes"

	"github.com/olekukonko/tablewriter"
	"github.com/passaro/ray-tracer/pkg/scene"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}
	logger.Noticef("available scenes\n%s", formatSceneList(scene.List()))
	return nil
}

func formatSceneList(scenes []scene.SceneInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Description"})
	for _, info := range scenes {
		table.Append([]string{info.ID, info.DisplayName, info.Description})
	}

	table.Render()
	return buf.String()
}
