package generic

import (
	"testing"

	"github.com/cwbudde/algo-mp3/cpu"
	"github.com/cwbudde/algo-mp3/internal/arch/archtest"
)

func TestRegistration(t *testing.T) {
	archtest.Run(t, archtest.Expectation{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		HasFHT:    true,
	})
}

func TestEligibleWithoutFeatures(t *testing.T) {
	if !cpu.Supports(cpu.Features{}, archtest.Entry(t, "generic").SIMDLevel) {
		t.Fatal("generic tier must be eligible for an empty feature set")
	}
}
