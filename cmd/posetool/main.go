// posetool is a CLI utility for inspecting transforms, their wire packets and
// baked vertex streams.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/pose/internal/bake"
	"github.com/Faultbox/pose/internal/config"
	"github.com/Faultbox/pose/internal/logger"
	"github.com/Faultbox/pose/internal/network/packets"
	"github.com/Faultbox/pose/pkg/transform"
	"github.com/Faultbox/pose/pkg/vertex"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	command := args[0]
	args = args[1:]

	switch command {
	case "matrix", "m":
		err = cmdMatrix(cfg, args)
	case "encode", "enc":
		err = cmdEncode(cfg, args)
	case "decode", "dec":
		err = cmdDecode(cfg, args)
	case "bake":
		err = cmdBake(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`posetool - transform and vertex bake utility

Usage:
  posetool [flags] <command> [args]

Commands:
  matrix <transform.yaml>                 Print the local matrices of a transform
  encode <transform.yaml>                 Print a TRANSFORM_UPDATE packet as hex
  decode <hex>                            Decode a TRANSFORM_UPDATE packet
  bake <transform.yaml> <vertices.yaml>   Bake vertices through a transform

Flags:
  -config <file>    Config file (default ./posetool.yaml)
  -debug            Enable debug logging
  -log-file <file>  Also write JSON logs to a rotated file
  -normals <mode>   Direction transform for bake: corrected or linear
  -center           Recenter baked positions on X/Z
  -node <id>        Node ID for encoded packets
  -dump             Dump decoded structures

Examples:
  posetool matrix node.yaml
  posetool -node 7 encode node.yaml
  posetool decode 100a31000700000001...
  posetool -center bake node.yaml mesh.yaml`)
}

func cmdMatrix(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: posetool matrix <transform.yaml>")
	}

	t, err := loadTransform(args[0])
	if err != nil {
		return err
	}
	dump(cfg, t.Serialize())

	fmt.Println(t)
	fmt.Println()
	fmt.Println("Local matrix:")
	fmt.Println(t.LocalMatrix())

	if t.IsDecomposed() {
		rt, err := t.LocalMatrixWithoutScale()
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println("Without scale:")
		fmt.Println(rt)
	}
	return nil
}

func cmdEncode(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: posetool encode <transform.yaml>")
	}

	t, err := loadTransform(args[0])
	if err != nil {
		return err
	}

	pkt := packets.NewTransformUpdate(cfg.Output.NodeID, t)
	data, err := pkt.Encode()
	if err != nil {
		return err
	}
	dump(cfg, pkt)

	logger.Debug("encoded transform",
		zap.Uint32("node", pkt.NodeID),
		zap.Bool("decomposed", pkt.Transform.IsDecomposed),
		zap.Int("bytes", len(data)))

	fmt.Println(hex.EncodeToString(data))
	return nil
}

func cmdDecode(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: posetool decode <hex>")
	}

	data, err := hex.DecodeString(strings.Join(strings.Fields(strings.Join(args, "")), ""))
	if err != nil {
		return fmt.Errorf("decoding hex: %w", err)
	}

	pkt, err := packets.DecodeTransformUpdate(data)
	if err != nil {
		return err
	}
	dump(cfg, pkt)

	t := transform.New()
	if err := pkt.Apply(t); err != nil {
		return err
	}

	fmt.Printf("Node: %d\n", pkt.NodeID)
	fmt.Println(t)
	fmt.Println()
	return writeYAML(pkt.Transform)
}

func cmdBake(cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: posetool bake <transform.yaml> <vertices.yaml>")
	}

	t, err := loadTransform(args[0])
	if err != nil {
		return err
	}

	var records []vertex.Record
	if err := readYAML(args[1], &records); err != nil {
		return err
	}

	b := bake.New(bake.Options{
		Linear:   cfg.Bake.Normals == config.NormalsLinear,
		CenterXZ: cfg.Bake.CenterXZ,
	}, logger.Log)

	res := b.Bake(t, records)
	dump(cfg, res)

	logger.Info("bake complete",
		zap.String("transform", args[0]),
		zap.Int("vertices", len(res.Vertices)),
		zap.Bool("reverse_winding", res.ReverseWinding))

	return writeYAML(res)
}

func loadTransform(path string) (*transform.Transform, error) {
	var n transform.NetworkTransform
	if err := readYAML(path, &n); err != nil {
		return nil, err
	}
	t, err := transform.FromNetwork(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func readYAML(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func writeYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
