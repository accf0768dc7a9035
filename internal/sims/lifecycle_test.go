package sims_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tmarkov/physviz/internal/frame"
	"github.com/tmarkov/physviz/internal/sims"
)

var surface = frame.Surface{Width: 200, Height: 120}

var _ = Describe("driver lifecycle", func() {
	for _, name := range sims.Names() {
		name := name
		Context(name, func() {
			var d frame.Driver

			BeforeEach(func() {
				var err error
				d, err = sims.New(name)
				Expect(err).NotTo(HaveOccurred())
			})

			It("panics when advanced before init", func() {
				Expect(func() { d.Advance(0.016, nil) }).To(Panic())
			})

			It("panics when reset before init", func() {
				Expect(func() { d.Reset() }).To(Panic())
			})

			It("panics when advanced after destroy", func() {
				d.Init(surface)
				d.Advance(0.016, nil)
				d.Destroy()
				Expect(func() { d.Advance(0.016, nil) }).To(Panic())
			})

			It("allows destroy from any phase", func() {
				Expect(func() { d.Destroy() }).NotTo(Panic())
			})

			It("describes without mutating state", func() {
				d.Init(surface)
				d.Advance(0.016, nil)
				first := d.Describe()
				second := d.Describe()
				Expect(second).To(Equal(first))
			})

			It("returns to the initial description after reset", func() {
				d.Init(surface)
				initial := d.Describe()
				for i := 0; i < 30; i++ {
					d.Advance(0.016, nil)
				}
				d.Reset()
				Expect(d.Describe()).To(Equal(initial))
				// resetting again must be a no-op relative to one reset
				d.Reset()
				Expect(d.Describe()).To(Equal(initial))
			})

			It("survives hostile frame deltas", func() {
				d.Init(surface)
				for _, dt := range []float64{0, 1e-9, 0.016, 5, 1e6} {
					Expect(func() { d.Advance(dt, nil) }).NotTo(Panic())
				}
				for _, s := range d.Describe() {
					Expect(math.IsNaN(s.Value)).To(BeFalse(), s.Label)
				}
			})

			It("resizes without losing the running phase", func() {
				d.Init(surface)
				d.Advance(0.016, nil)
				d.Resize(80, 50)
				Expect(func() { d.Advance(0.016, nil) }).NotTo(Panic())
			})
		})
	}
})

var _ = Describe("registry", func() {
	It("rejects unknown names", func() {
		_, err := sims.New("warpdrive")
		Expect(err).To(HaveOccurred())
	})

	It("lists names in sorted order", func() {
		Expect(sims.Names()).To(Equal([]string{
			"convection", "cyclotron", "electrostatic", "gas", "orbit",
		}))
	})
})
