package main

import (
	"fmt"
	"os"

	"github.com/voxelsplace/dualmc/utils"
)

func usage() {
	fmt.Println("Usage: dmctool <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  raw2obj input.raw nx ny nz iso output.obj [manifold] [soup]   (extract iso-surface from raw samples)")
	fmt.Println("  raw2glb input.raw nx ny nz iso output.glb [manifold]          (extract and export as binary glTF)")
	fmt.Println("  dvol2obj input.dvol iso output.obj [manifold] [soup]          (extract iso-surface from a .dvol volume)")
	fmt.Println("  dvol2glb input.dvol iso output.glb [manifold]                 (extract and export as binary glTF)")
	fmt.Println("  raw2dvol input.raw nx ny nz none|zlib|zstd output.dvol        (wrap raw samples into a .dvol container)")
	fmt.Println("  dvol2raw input.dvol output.raw                                (unwrap a .dvol container)")
	fmt.Println("  gensphere n output.dvol                                       (generate an n^3 sphere test volume)")
	fmt.Println("  gennoise nx ny nz percentage output.dvol                      (generate a random test volume)")
}

func parseDim(s string) (int32, error) {
	var v int32
	if _, err := fmt.Sscan(s, &v); err != nil {
		return 0, fmt.Errorf("bad dimension %q: %w", s, err)
	}
	return v, nil
}

func parseIso(s string) (uint8, error) {
	var v uint8
	if _, err := fmt.Sscan(s, &v); err != nil {
		return 0, fmt.Errorf("bad iso value %q: %w", s, err)
	}
	return v, nil
}

// parseModes consumes trailing "manifold"/"soup" tokens.
func parseModes(args []string) (manifold, soup bool, err error) {
	for _, a := range args {
		switch a {
		case "manifold":
			manifold = true
		case "soup":
			soup = true
		default:
			return false, false, fmt.Errorf("unknown option %q", a)
		}
	}
	return manifold, soup, nil
}

func fail(err error) {
	fmt.Println("Error:", err)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "raw2obj":
		if len(os.Args) < 8 || len(os.Args) > 10 {
			usage()
			os.Exit(1)
		}
		nx, err := parseDim(os.Args[3])
		if err != nil {
			fail(err)
		}
		ny, err := parseDim(os.Args[4])
		if err != nil {
			fail(err)
		}
		nz, err := parseDim(os.Args[5])
		if err != nil {
			fail(err)
		}
		iso, err := parseIso(os.Args[6])
		if err != nil {
			fail(err)
		}
		manifold, soup, err := parseModes(os.Args[8:])
		if err != nil {
			fail(err)
		}
		if err := utils.RunRaw2OBJ(os.Args[2], nx, ny, nz, iso, manifold, soup, os.Args[7]); err != nil {
			fail(err)
		}
	case "raw2glb":
		if len(os.Args) < 8 || len(os.Args) > 9 {
			usage()
			os.Exit(1)
		}
		nx, err := parseDim(os.Args[3])
		if err != nil {
			fail(err)
		}
		ny, err := parseDim(os.Args[4])
		if err != nil {
			fail(err)
		}
		nz, err := parseDim(os.Args[5])
		if err != nil {
			fail(err)
		}
		iso, err := parseIso(os.Args[6])
		if err != nil {
			fail(err)
		}
		manifold, _, err := parseModes(os.Args[8:])
		if err != nil {
			fail(err)
		}
		if err := utils.RunRaw2GLB(os.Args[2], nx, ny, nz, iso, manifold, os.Args[7]); err != nil {
			fail(err)
		}
	case "dvol2obj":
		if len(os.Args) < 5 || len(os.Args) > 7 {
			usage()
			os.Exit(1)
		}
		iso, err := parseIso(os.Args[3])
		if err != nil {
			fail(err)
		}
		manifold, soup, err := parseModes(os.Args[5:])
		if err != nil {
			fail(err)
		}
		if err := utils.RunDVOL2OBJ(os.Args[2], iso, manifold, soup, os.Args[4]); err != nil {
			fail(err)
		}
	case "dvol2glb":
		if len(os.Args) < 5 || len(os.Args) > 6 {
			usage()
			os.Exit(1)
		}
		iso, err := parseIso(os.Args[3])
		if err != nil {
			fail(err)
		}
		manifold, _, err := parseModes(os.Args[5:])
		if err != nil {
			fail(err)
		}
		if err := utils.RunDVOL2GLB(os.Args[2], iso, manifold, os.Args[4]); err != nil {
			fail(err)
		}
	case "raw2dvol":
		if len(os.Args) != 8 {
			usage()
			os.Exit(1)
		}
		nx, err := parseDim(os.Args[3])
		if err != nil {
			fail(err)
		}
		ny, err := parseDim(os.Args[4])
		if err != nil {
			fail(err)
		}
		nz, err := parseDim(os.Args[5])
		if err != nil {
			fail(err)
		}
		comp, err := utils.ParseCompression(os.Args[6])
		if err != nil {
			fail(err)
		}
		if err := utils.RunRaw2DVOL(os.Args[2], nx, ny, nz, comp, os.Args[7]); err != nil {
			fail(err)
		}
	case "dvol2raw":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunDVOL2Raw(os.Args[2], os.Args[3]); err != nil {
			fail(err)
		}
	case "gensphere":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		n, err := parseDim(os.Args[2])
		if err != nil {
			fail(err)
		}
		if err := utils.RunGenerateSphere(n, os.Args[3]); err != nil {
			fail(err)
		}
	case "gennoise":
		if len(os.Args) != 7 {
			usage()
			os.Exit(1)
		}
		nx, err := parseDim(os.Args[2])
		if err != nil {
			fail(err)
		}
		ny, err := parseDim(os.Args[3])
		if err != nil {
			fail(err)
		}
		nz, err := parseDim(os.Args[4])
		if err != nil {
			fail(err)
		}
		var perc float64
		if _, err := fmt.Sscan(os.Args[5], &perc); err != nil {
			fail(err)
		}
		if err := utils.RunGenerateNoise(nx, ny, nz, perc, os.Args[6]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(1)
	}

	fmt.Println("Operation completed!")
}
