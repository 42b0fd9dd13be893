package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-bvh-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scene registry.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()

	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}
