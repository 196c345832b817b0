package metrics

import "github.com/san-kum/stickslip/internal/dynamo"

// Dissipation is the mechanical energy lost between the first and the last
// observed sample.
type Dissipation struct {
	name    string
	params  dynamo.Params
	initial float64
	current float64
	samples int
}

func NewDissipation(p dynamo.Params) *Dissipation {
	return &Dissipation{
		name:   "energy_dissipated",
		params: p,
	}
}

func (d *Dissipation) Name() string { return d.name }

func (d *Dissipation) Observe(s dynamo.Sample) {
	e := d.params.Energy(s.State)
	if d.samples == 0 {
		d.initial = e
	}
	d.current = e
	d.samples++
}

func (d *Dissipation) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return d.initial - d.current
}

func (d *Dissipation) Reset() {
	d.initial = 0
	d.current = 0
	d.samples = 0
}

// FinalEnergy reports the mechanical energy of the last observed sample.
type FinalEnergy struct {
	name   string
	params dynamo.Params
	value  float64
}

func NewFinalEnergy(p dynamo.Params) *FinalEnergy {
	return &FinalEnergy{name: "final_energy", params: p}
}

func (f *FinalEnergy) Name() string { return f.name }

func (f *FinalEnergy) Observe(s dynamo.Sample) {
	f.value = f.params.Energy(s.State)
}

func (f *FinalEnergy) Value() float64 { return f.value }

func (f *FinalEnergy) Reset() { f.value = 0 }
