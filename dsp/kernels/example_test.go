package kernels_test

import (
	"fmt"

	"github.com/cwbudde/algo-mp3/cpu"
	"github.com/cwbudde/algo-mp3/dsp/kernels"
)

func ExampleNewTable() {
	// An empty feature set always resolves to the scalar kernels.
	tbl := kernels.NewTable(cpu.Features{})
	fmt.Println(tbl)
	// Output:
	// xrpow=generic fht=generic
}

func ExampleTable_ComputePowerAndStats() {
	tbl := kernels.NewTable(cpu.Features{}, kernels.WithGenericOnly())

	spectral := []float32{2, -3, 0, 5}
	power := make([]float32, len(spectral))
	sum, peak := tbl.ComputePowerAndStats(spectral, power, len(spectral)-1)

	fmt.Printf("sum=%.1f max=%.4f\n", sum, peak)
	fmt.Printf("%.4f %.4f %.4f %.4f\n", power[0], power[1], power[2], power[3])
	// Output:
	// sum=10.0 max=3.3437
	// 1.6818 2.2795 0.0000 3.3437
}

func ExampleValidTransformLength() {
	for _, n := range []int{8, 16, 512} {
		fmt.Println(n, kernels.ValidTransformLength(n))
	}
	// Output:
	// 8 true
	// 16 false
	// 512 true
}

func ExampleTable_HartleyTransform() {
	tbl := kernels.NewTable(cpu.Features{})

	// 32 samples (n = 16) is a power of two but not of four.
	for _, n := range []int{16, 8} {
		if !kernels.ValidTransformLength(n) {
			fmt.Println(n, "unsupported")
			continue
		}
		buf := make([]float32, 2*n)
		buf[0] = 1
		tbl.HartleyTransform(buf, n)
		fmt.Println(n, buf)
	}
	// Output:
	// 16 unsupported
	// 8 [1 0 0 0 1 0 0 0 1 0 0 0 1 0 0 0]
}
