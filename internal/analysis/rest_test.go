package analysis

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/san-kum/stickslip/internal/cycles"
	"github.com/san-kum/stickslip/internal/dynamo"
)

func TestDetectRest(t *testing.T) {
	p := dynamo.DefaultParams()
	held := p
	held.InitialDisplacement = 0.2

	tests := []struct {
		name     string
		p        dynamo.Params
		cfg      dynamo.Config
		opts     RestOptions
		wantOK   bool
		wantTime float64
		tol      float64
	}{
		{
			name:     "reference run settles after ten half swings",
			p:        p,
			cfg:      dynamo.Config{Dt: 1e-4, Duration: 30},
			wantOK:   true,
			wantTime: 10 * cycles.HalfPeriod(p),
			tol:      0.1,
		},
		{
			name:   "still sliding at the end",
			p:      p,
			cfg:    dynamo.Config{Dt: 1e-3, Duration: 10},
			wantOK: false,
		},
		{
			name:     "held from release",
			p:        held,
			cfg:      dynamo.Config{Dt: 1e-3, Duration: 1},
			wantOK:   true,
			wantTime: 0,
			tol:      1e-12,
		},
		{
			name:   "rest shorter than required",
			p:      held,
			cfg:    dynamo.Config{Dt: 1e-3, Duration: 1},
			opts:   RestOptions{MinDuration: 2},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			tr := integrate(t, tt.p, tt.cfg)

			idx, ok := DetectRest(tr, tt.p, tt.opts)
			g.Expect(ok).To(Equal(tt.wantOK))
			if tt.wantOK {
				g.Expect(tr.Times[idx]).To(BeNumerically("~", tt.wantTime, tt.tol))
			}
		})
	}
}

func TestDetectRest_Empty(t *testing.T) {
	g := NewWithT(t)

	_, ok := DetectRest(nil, dynamo.DefaultParams(), RestOptions{})
	g.Expect(ok).To(BeFalse())
}
