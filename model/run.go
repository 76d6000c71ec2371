package model

import "github.com/andy-lcw/awp-odc-os/grid"

// Stepper advances the wavefield one timestep; the fault-source perturbation
// is applied after it, composing additively with its stress update.
type Stepper interface {
	Step(i int, pd *grid.PatchDecomp) error
}

// Step runs one timestep on this partition's state.
func (d *Domain) Step(i int, st Stepper) error {
	if st != nil {
		if err := st.Step(i, d.PD); err != nil {
			return err
		}
	}
	return d.Src.AddSrc(i, d.PD)
}

// Run advances Cfg.Steps timesteps. st may be nil to apply sources alone.
func (d *Domain) Run(st Stepper) error {
	for i := 0; i < d.Cfg.Steps; i++ {
		if err := d.Step(i, st); err != nil {
			return err
		}
	}
	return nil
}
