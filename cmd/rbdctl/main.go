// Command rbdctl runs one of the four standard reliability topologies
// against a generated reliability curve and prints the resulting output
// vector, one value per line.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/rbd"
	"github.com/katalvlaran/rbd/curvegen"
	"github.com/katalvlaran/rbd/matrix"
)

func main() {
	topology := flag.String("topology", "series", "topology to evaluate: series, parallel, bridge, koon")
	n := flag.Uint("n", 3, "component count (ignored for bridge, which is fixed at 5)")
	k := flag.Uint("k", 2, "success threshold (koon only)")
	t := flag.Uint("t", 10, "time-grid length")
	curve := flag.String("curve", "constant", "component curve generator: constant, expo, weibull")
	value := flag.Float64("value", 0.9, "constant curve value")
	lambda := flag.Float64("lambda", 0.05, "expo curve decay rate")
	eta := flag.Float64("eta", 20, "weibull scale parameter")
	beta := flag.Float64("beta", 1.5, "weibull shape parameter")
	flag.Parse()

	out, err := run(*topology, *curve, uint8(*n), uint8(*k), uint32(*t), *value, *lambda, *eta, *beta)
	if err != nil {
		log.Fatalf("rbdctl: %v", err)
	}

	for _, v := range out {
		fmt.Fprintf(os.Stdout, "%.6f\n", v)
	}
}

func run(topology, curveKind string, n, k uint8, t uint32, value, lambda, eta, beta float64) ([]float64, error) {
	rowCount := int(n)
	if topology == "bridge" {
		rowCount = 5
	}

	rows := make([][]float64, rowCount)
	for i := range rows {
		var c []float64
		switch curveKind {
		case "constant":
			c = curvegen.Constant(t, value)
		case "expo":
			c = curvegen.ExponentialDecay(t, lambda)
		case "weibull":
			c = curvegen.Weibull(t, eta, beta)
		default:
			return nil, fmt.Errorf("unknown curve generator %q", curveKind)
		}
		rows[i] = c
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, err
	}

	switch topology {
	case "series":
		return rbd.Series(m, n, t)
	case "parallel":
		return rbd.Parallel(m, n, t)
	case "bridge":
		return rbd.Bridge(m, t)
	case "koon":
		return rbd.KooN(m, rbd.Config{N: n, K: k, T: t})
	default:
		return nil, fmt.Errorf("unknown topology %q", topology)
	}
}
