// Command yoccctl drives the YOCC API from the terminal: placing orders,
// running the texture edit wizard and managing order status.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"yocc-backend/internal/client"
	"yocc-backend/internal/imagecodec"
	"yocc-backend/internal/models"
	"yocc-backend/internal/palette"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:  "yoccctl",
		Usage: "YOCC API client",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server", Value: "http://localhost:8080", EnvVars: []string{"YOCC_SERVER"}, Usage: "API root URL"},
			&cli.StringFlag{Name: "token", EnvVars: []string{"YOCC_TOKEN"}, Usage: "bearer token"},
			&cli.StringFlag{Name: "blob-root", EnvVars: []string{"YOCC_BLOB_ROOT"}, Usage: "directory blob: references resolve against"},
			&cli.StringFlag{Name: "textures", EnvVars: []string{"YOCC_TEXTURES"}, Usage: "catalog texture root (default <server>/textures)"},
		},
		Writer: out,
		Commands: []*cli.Command{
			ordersCommand(),
			adminCommand(),
			editCommand(),
			{
				Name:      "generate",
				Usage:     "generate an image from a prompt",
				ArgsUsage: "[prompt]",
				Action: func(c *cli.Context) error {
					resp, err := apiClient(c).Generate(c.Context, c.Args().First())
					if err != nil {
						return err
					}
					return printJSON(c, resp)
				},
			},
			{
				Name:  "describe",
				Usage: "describe an image as a recreation prompt in a new color",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "image", Required: true},
					&cli.StringFlag{Name: "color", Value: "#ffffff"},
				},
				Action: func(c *cli.Context) error {
					uri, err := encoder(c).Encode(c.Context, imagecodec.FromRef(c.String("image")))
					if err != nil {
						return err
					}
					result, err := apiClient(c).Describe(c.Context, uri, c.String("color"))
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(c.App.Writer, result)
					return err
				},
			},
			{
				Name:      "palette",
				Usage:     "extract swatches from an image",
				ArgsUsage: "<image>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "remote", Usage: "extract on the server instead of locally"},
				},
				Action: paletteAction,
			},
			profileCommand(),
		},
	}
}

func apiClient(c *cli.Context) *client.Client {
	return client.NewClient(c.String("server"), c.String("token"))
}

func encoder(c *cli.Context) *imagecodec.Encoder {
	return imagecodec.NewEncoder(nil, c.String("blob-root"))
}

func printJSON(c *cli.Context, v any) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func source(ref string) imagecodec.Source {
	if ref == "" {
		return imagecodec.Source{}
	}
	return imagecodec.FromRef(ref)
}

func ordersCommand() *cli.Command {
	return &cli.Command{
		Name:  "orders",
		Usage: "place and list your orders",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list your orders, newest first",
				Action: func(c *cli.Context) error {
					orders, err := apiClient(c).ListOrders(c.Context)
					if err != nil {
						return err
					}
					return printJSON(c, orders)
				},
			},
			{
				Name:  "create",
				Usage: "place an order",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "address", Required: true},
					&cli.StringFlag{Name: "prompt", Required: true},
					&cli.StringFlag{Name: "color", Usage: "hex color (default: first hex code in the prompt)"},
					&cli.IntFlag{Name: "qty", Value: 1},
					&cli.StringFlag{Name: "main", Required: true, Usage: "main reference image (path, URL, blob: or data URI)"},
					&cli.StringFlag{Name: "additional", Usage: "optional second reference image"},
				},
				Action: func(c *cli.Context) error {
					color := c.String("color")
					if color == "" {
						color = client.ColorFromPrompt(c.String("prompt"))
					}
					order, err := client.SubmitOrder(c.Context, apiClient(c), encoder(c), client.OrderForm{
						Nama:            c.String("name"),
						Email:           c.String("email"),
						Alamat:          c.String("address"),
						Warna:           color,
						Jumlah:          c.Int("qty"),
						Prompt:          c.String("prompt"),
						MainImage:       source(c.String("main")),
						AdditionalImage: source(c.String("additional")),
					})
					if err != nil {
						return err
					}
					return printJSON(c, order)
				},
			},
		},
	}
}

func adminCommand() *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "administer all orders",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list every order with its owner",
				Action: func(c *cli.Context) error {
					board := client.NewAdminBoard(apiClient(c))
					if err := board.Refresh(c.Context); err != nil {
						return err
					}
					return printJSON(c, board.Orders())
				},
			},
			{
				Name:      "set-status",
				Usage:     "move an order to a new status",
				ArgsUsage: "<order-id> <status>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return cli.Exit("usage: yoccctl admin set-status <order-id> <status>", 2)
					}
					id, err := uuid.Parse(c.Args().Get(0))
					if err != nil {
						return fmt.Errorf("invalid order id: %w", err)
					}
					status, err := models.ParseStatus(c.Args().Get(1))
					if err != nil {
						return err
					}

					board := client.NewAdminBoard(apiClient(c))
					if err := board.Refresh(c.Context); err != nil {
						return err
					}
					if err := board.UpdateStatus(c.Context, id, status); err != nil {
						return err
					}
					for _, o := range board.Orders() {
						if o.ID == id {
							return printJSON(c, o)
						}
					}
					return nil
				},
			},
		},
	}
}

func editCommand() *cli.Command {
	return &cli.Command{
		Name:  "edit",
		Usage: "apply a texture color to a product photo",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "texture", Required: true, Usage: "texture image colors are extracted from"},
			&cli.StringFlag{Name: "base", Required: true, Usage: "product photo to edit"},
			&cli.StringFlag{Name: "swatch", Value: string(palette.Vibrant), Usage: "swatch to use: Vibrant, DarkVibrant, LightVibrant or Muted"},
			&cli.StringFlag{Name: "mode", Value: string(client.ModeRecolor), Usage: "keep or recolor"},
			&cli.StringFlag{Name: "product", Value: client.DefaultProduct, Usage: "catalog product for recolor mode"},
			&cli.StringFlag{Name: "out", Value: "edited.png", Usage: "where to write the edited image"},
			&cli.BoolFlag{Name: "order", Usage: "print the order form prefilled from the result"},
		},
		Action: editAction,
	}
}

func editAction(c *cli.Context) error {
	api := apiClient(c)
	root := c.String("textures")
	if root == "" {
		root = api.BaseURL() + "/textures"
	}
	w := client.NewEditWizard(api, encoder(c), client.Catalog{Root: root})

	if err := w.LoadTexture(c.Context, imagecodec.FromRef(c.String("texture"))); err != nil {
		return err
	}
	hex, ok := w.State().Swatches[c.String("swatch")]
	if !ok {
		return fmt.Errorf("the texture has no %s swatch; available: %v", c.String("swatch"), w.State().Swatches)
	}
	if err := w.SelectColor(hex); err != nil {
		return err
	}
	if err := w.Next(); err != nil {
		return err
	}
	if err := w.SetBaseImage(c.Context, imagecodec.FromRef(c.String("base"))); err != nil {
		return err
	}
	if err := w.SetMode(client.Mode(c.String("mode"))); err != nil {
		return err
	}
	if err := w.SetProduct(c.String("product")); err != nil {
		return err
	}

	if _, err := w.Generate(c.Context); err != nil {
		return err
	}
	art, err := w.Finish()
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.String("out"), art.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "wrote %s (%s, color %s)\n", c.String("out"), art.MimeType, hex)

	if c.Bool("order") {
		form := client.ArtifactToOrderForm(art)
		return printJSON(c, map[string]any{
			"warna":  form.Warna,
			"jumlah": form.Jumlah,
			"prompt": form.Prompt,
			"main":   c.String("out"),
		})
	}
	return nil
}

func paletteAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: yoccctl palette <image>", 2)
	}
	data, mimeType, err := encoder(c).Fetch(c.Context, imagecodec.FromRef(c.Args().First()))
	if err != nil {
		return err
	}

	if c.Bool("remote") {
		swatches, err := apiClient(c).Palette(c.Context, client.File{Name: "texture", MimeType: mimeType, Data: data})
		if err != nil {
			return err
		}
		return printJSON(c, models.PaletteResponse{Swatches: swatches})
	}

	p, err := palette.Extract(bytes.NewReader(data))
	if err != nil {
		return err
	}
	return printJSON(c, models.PaletteResponse{Swatches: p.Hexes()})
}

func profileCommand() *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "show or update your profile",
		Subcommands: []*cli.Command{
			{
				Name: "get",
				Action: func(c *cli.Context) error {
					p, err := apiClient(c).GetProfile(c.Context)
					if err != nil {
						return err
					}
					return printJSON(c, p)
				},
			},
			{
				Name: "set",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "first-name", Required: true},
					&cli.StringFlag{Name: "last-name"},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "address"},
				},
				Action: func(c *cli.Context) error {
					p, err := apiClient(c).UpdateProfile(c.Context, models.ProfileRequest{
						FirstName: c.String("first-name"),
						LastName:  c.String("last-name"),
						Email:     c.String("email"),
						Address:   c.String("address"),
					})
					if err != nil {
						return err
					}
					return printJSON(c, p)
				},
			},
		},
	}
}
