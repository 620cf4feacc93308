// Command sfxrgen generates, inspects and exports sfxr sound effects.
//
// Usage:
//
//	sfxrgen [flags]
//
// A sound comes either from a preset recipe (preset, mutation rounds and
// seed) or from an sfxr parameter file. It can be saved as a version 102
// parameter file, rendered to raw little-endian PCM, and analysed.
//
// Examples:
//
//	sfxrgen -preset laser -seed 17 -info
//	sfxrgen -recipe coin:2:0x2a -o coin.sfxr -pcm coin.raw
//	sfxrgen -load jump.sfxr -pcm jump.raw -format f32x2
//	sfxrgen -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-sfxr/dsp/sfxr/codec"
	"github.com/cwbudde/algo-sfxr/dsp/sfxr/decoder"
	"github.com/cwbudde/algo-sfxr/dsp/sfxr/frames"
	"github.com/cwbudde/algo-sfxr/dsp/sfxr/params"
	"github.com/cwbudde/algo-sfxr/dsp/sfxr/preset"
	"github.com/cwbudde/algo-sfxr/measure/sfxinfo"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	preset    string
	recipe    string
	seed      uint64
	mutations uint
	load      string
	out       string
	pcm       string
	format    string
	info      bool
	list      bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sfxrgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opt options
	fs.StringVar(&opt.preset, "preset", "random", "preset to generate (use -list to see available)")
	fs.StringVar(&opt.recipe, "recipe", "", "preset[:mutations[:seed]] recipe, overrides -preset, -mutations and -seed")
	fs.Uint64Var(&opt.seed, "seed", 1, "generator seed")
	fs.UintVar(&opt.mutations, "mutations", 0, "mutation rounds applied after the preset")
	fs.StringVar(&opt.load, "load", "", "load parameters from an sfxr file instead of generating")
	fs.StringVar(&opt.out, "o", "", "save parameters to an sfxr file (version 102)")
	fs.StringVar(&opt.pcm, "pcm", "", "render the effect to a raw little-endian PCM file")
	fs.StringVar(&opt.format, "format", "s16", "PCM layout: s16, s16x2, f32 or f32x2")
	fs.BoolVar(&opt.info, "info", false, "print the parameter table and an analysis of the rendered effect")
	fs.BoolVar(&opt.list, "list", false, "list preset names")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sfxrgen [flags]\n\n")
		fmt.Fprintf(stderr, "Generates, inspects and exports sfxr sound effects.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  sfxrgen -preset laser -seed 17 -info\n")
		fmt.Fprintf(stderr, "  sfxrgen -recipe coin:2:0x2a -o coin.sfxr -pcm coin.raw\n")
		fmt.Fprintf(stderr, "  sfxrgen -load jump.sfxr -pcm jump.raw -format f32x2\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opt.list {
		printList(stdout)
		return 0
	}

	if err := execute(opt, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func execute(opt options, stdout, stderr io.Writer) error {
	p, recipe, err := source(opt)
	if err != nil {
		return err
	}

	if opt.out != "" {
		if err := saveParams(opt.out, p); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "wrote %s\n", opt.out)
	}

	if opt.pcm != "" {
		n, err := writePCM(opt.pcm, opt.format, p, recipe.Seed)
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "wrote %s (%d bytes)\n", opt.pcm, n)
	}

	if opt.info || (opt.out == "" && opt.pcm == "") {
		return printInfo(stdout, p, recipe, opt.load)
	}

	return nil
}

// source resolves the parameters to work on. Loaded files carry no recipe;
// their noise seed falls back to the quick-start seed.
func source(opt options) (params.Params, preset.Recipe, error) {
	if opt.load != "" {
		f, err := os.Open(opt.load)
		if err != nil {
			return params.Params{}, preset.Recipe{}, err
		}
		defer f.Close()

		p, err := codec.LoadFrom(f)
		if err != nil {
			return params.Params{}, preset.Recipe{}, fmt.Errorf("%s: %w", opt.load, err)
		}
		return p, preset.Recipe{Seed: decoder.QuickSeed}, nil
	}

	var recipe preset.Recipe
	if opt.recipe != "" {
		r, err := preset.ParseRecipe(opt.recipe)
		if err != nil {
			return params.Params{}, preset.Recipe{}, err
		}
		recipe = r
	} else {
		pr, err := preset.Parse(opt.preset)
		if err != nil {
			return params.Params{}, preset.Recipe{}, err
		}
		recipe = preset.Recipe{Preset: pr, Mutations: opt.mutations, Seed: opt.seed}
	}

	return recipe.Params(), recipe, nil
}

func saveParams(path string, p params.Params) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return codec.SaveTo(f, p)
}

func writePCM(path, format string, p params.Params, seed uint64) (n int64, err error) {
	layout, err := frames.ParseFormat(format)
	if err != nil {
		return 0, err
	}

	r, err := frames.NewReader(decoder.New(p, seed), layout)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return io.Copy(f, r)
}

func printList(w io.Writer) {
	for _, p := range preset.All() {
		fmt.Fprintln(w, p)
	}
}

func printInfo(w io.Writer, p params.Params, recipe preset.Recipe, loaded string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if loaded != "" {
		fmt.Fprintf(tw, "Source\t%s\n", loaded)
	} else {
		fmt.Fprintf(tw, "Recipe\t%s\n", recipe)
	}
	fmt.Fprintf(tw, "Wave\t%s\n", p.WaveType)
	fmt.Fprintf(tw, "------\t-----\n")

	for _, f := range params.Fields() {
		fmt.Fprintf(tw, "%s\t%.6f\n", f, p.Get(f))
	}

	res, err := sfxinfo.AnalyzeParams(p, recipe.Seed)
	switch {
	case errors.Is(err, sfxinfo.ErrNoSamples):
		fmt.Fprintf(tw, "------\t-----\n")
		fmt.Fprintf(tw, "Frames\t0\n")
	case err != nil:
		return err
	default:
		fmt.Fprintf(tw, "------\t-----\n")
		fmt.Fprintf(tw, "Frames\t%d\n", res.Frames)
		fmt.Fprintf(tw, "Duration\t%v\n", res.Duration)
		fmt.Fprintf(tw, "Peak [dBFS]\t%.2f\n", res.PeakDB)
		fmt.Fprintf(tw, "RMS [dBFS]\t%.2f\n", res.RMSDB)
		fmt.Fprintf(tw, "Crest factor\t%.3f\n", res.CrestFactor)
		fmt.Fprintf(tw, "DC\t%.6f\n", res.DC)
		fmt.Fprintf(tw, "Clipped\t%d\n", res.Clipped)
		fmt.Fprintf(tw, "Dominant [Hz]\t%.1f\n", res.DominantHz)
		fmt.Fprintf(tw, "Centroid [Hz]\t%.1f\n", res.CentroidHz)
		fmt.Fprintf(tw, "Rolloff 85%% [Hz]\t%.1f\n", res.RolloffHz)
	}

	return tw.Flush()
}
