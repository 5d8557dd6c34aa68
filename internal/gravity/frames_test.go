package gravity_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbital/internal/gravity"
)

func threeBodyData() map[string]gravity.BodyData {
	return map[string]gravity.BodyData{
		"alpha": {Position: []float64{-100, 0}, Velocity: []float64{0, -5}, Mass: 5e14},
		"beta":  {Position: []float64{100, 0}, Velocity: []float64{0, 5}, Mass: 5e14},
		"gamma": {Position: []float64{0, 150}, Velocity: []float64{3, 0}, Mass: 1e14},
	}
}

func collect(it *gravity.Frames) []gravity.Frame {
	frames := make([]gravity.Frame, 0)
	for it.Next() {
		frames = append(frames, it.Current())
	}
	Expect(it.Err()).NotTo(HaveOccurred())
	return frames
}

var _ = Describe("Frames iteration", func() {
	var sys *gravity.System

	BeforeEach(func() {
		cfg := gravity.DefaultConfig()
		cfg.BaseInterval = 0.01
		cfg.Limit = 25
		var err error
		sys, err = gravity.New(threeBodyData(), cfg)
		Expect(err).NotTo(HaveOccurred())
	})

	It("yields exactly limit frames", func() {
		Expect(collect(sys.Frames())).To(HaveLen(25))
	})

	It("yields no frames when the limit is zero", func() {
		cfg := gravity.DefaultConfig()
		cfg.Limit = 0
		zero, err := gravity.New(threeBodyData(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(collect(zero.Frames())).To(BeEmpty())
	})

	It("leaves the persistent state untouched", func() {
		posBefore := sys.Positions()
		velBefore := sys.Velocities()

		collect(sys.Frames())

		Expect(sys.Positions()).To(Equal(posBefore))
		Expect(sys.Velocities()).To(Equal(velBefore))
		Expect(sys.StepCount()).To(BeZero())
		Expect(sys.History().Len()).To(BeZero())
	})

	It("replays an identical sequence on re-iteration", func() {
		first := collect(sys.Frames())
		second := collect(sys.Frames())

		Expect(second).To(HaveLen(len(first)))
		for i := range first {
			Expect(second[i].Positions).To(Equal(first[i].Positions))
			Expect(second[i].Velocities).To(Equal(first[i].Velocities))
			Expect(second[i].Time).To(Equal(first[i].Time))
		}
	})

	It("keeps interleaved iterations independent", func() {
		a := sys.Frames()
		b := sys.Frames()

		for a.Next() {
			Expect(b.Next()).To(BeTrue())
			Expect(b.Current().Positions).To(Equal(a.Current().Positions))
		}
		Expect(b.Next()).To(BeFalse())
		Expect(a.Err()).NotTo(HaveOccurred())
		Expect(b.Err()).NotTo(HaveOccurred())
	})

	It("is safe to abandon early", func() {
		it := sys.Frames()
		for i := 0; i < 5 && it.Next(); i++ {
		}
		Expect(sys.StepCount()).To(BeZero())
		Expect(collect(sys.Frames())).To(HaveLen(25))
	})

	It("accumulates trails scoped to the iteration", func() {
		it := sys.Frames()
		step := 0
		for it.Next() {
			step++
			f := it.Current()
			Expect(f.Trails).To(HaveLen(sys.BodyCount()))
			for _, trail := range f.Trails {
				Expect(trail).To(HaveLen(step))
			}
		}
		Expect(sys.History().Len()).To(BeZero())
	})

	It("omits trails when history is disabled", func() {
		sys.DisableHistory()
		it := sys.Frames()
		Expect(it.Next()).To(BeTrue())
		Expect(it.Current().Trails).To(BeNil())
	})

	It("starts from the committed state after explicit steps", func() {
		Expect(sys.Step()).To(Succeed())
		committed := sys.Positions()

		it := sys.Frames()
		Expect(it.Next()).To(BeTrue())
		Expect(it.Current().Positions).NotTo(Equal(committed))
		Expect(sys.Positions()).To(Equal(committed))
		Expect(sys.StepCount()).To(Equal(1))
	})

	It("surfaces a degeneracy error through Err", func() {
		data := map[string]gravity.BodyData{
			"a": {Position: []float64{0, 0}, Velocity: []float64{0, 0}, Mass: 1},
			"b": {Position: []float64{0, 0}, Velocity: []float64{0, 0}, Mass: 1},
		}
		bad, err := gravity.New(data, gravity.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())

		it := bad.Frames()
		Expect(it.Next()).To(BeFalse())
		Expect(it.Err()).To(BeAssignableToTypeOf(gravity.DegeneracyError{}))
	})

	It("exposes units and dt on every frame", func() {
		it := sys.Frames()
		Expect(it.Next()).To(BeTrue())
		f := it.Current()
		Expect(f.Dt).To(Equal(0.01))
		Expect(f.TimeUnits).To(Equal("secs"))
		Expect(f.SpaceUnits).To(Equal("m"))
		Expect(f.Labels).To(Equal([]string{"alpha", "beta", "gamma"}))
	})
})

var _ = Describe("Run", func() {
	It("drains the iteration into a result without mutating", func() {
		cfg := gravity.DefaultConfig()
		cfg.Limit = 10
		sys, err := gravity.New(threeBodyData(), cfg)
		Expect(err).NotTo(HaveOccurred())

		result, err := sys.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Frames).To(HaveLen(10))
		Expect(result.StepsTaken).To(Equal(10))
		Expect(result.Times[9]).To(BeNumerically("~", 10*sys.Dt(), 1e-12))
		Expect(sys.StepCount()).To(BeZero())
	})
})
