package cmd

import (
	"bytes"
	"fmt"
	"math/rand"

	"github.com/df07/go-bvh-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// BVHStats builds a scene and prints the shape of its BVH.
func BVHStats(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.Lookup(ctx.String("scene"), rand.New(rand.NewSource(ctx.Int64("seed"))))
	if err != nil {
		logger.Error(err)
		return err
	}

	stats := sc.BVH().Stats()
	bounds := sc.BoundingBox()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Primitives", "Nodes", "Leaves", "Max depth", "Avg depth", "Bounds", "Center"})
	table.Append([]string{
		sc.Name,
		fmt.Sprintf("%d", sc.PrimitiveCount()),
		fmt.Sprintf("%d", stats.TotalNodes),
		fmt.Sprintf("%d", stats.LeafNodes),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%.2f", stats.AvgDepth),
		fmt.Sprintf("%v - %v", bounds.Min, bounds.Max),
		fmt.Sprintf("%v", bounds.Center()),
	})
	table.Render()

	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}
