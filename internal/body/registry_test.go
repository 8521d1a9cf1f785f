package body_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lalithu/Classical-TwoBody/internal/body"
	"github.com/lalithu/Classical-TwoBody/internal/dynamics"
)

func twoBodies() []body.Body {
	return []body.Body{
		{
			Name: "a", Mass: 1e9,
			Position: []float64{-0.5, 0}, Velocity: []float64{0.02, 0.1},
			Meta: body.Meta{Radius: 0.125, Color: "dodgerblue"},
		},
		{
			Name: "b", Mass: 1e5,
			Position: []float64{0.5, 0}, Velocity: []float64{-0.08, -0.06},
			Meta: body.Meta{Radius: 0.1, Color: "darkred"},
		},
	}
}

var _ = Describe("Registry", func() {
	Describe("validation", func() {
		It("accepts a well-formed two-body set", func() {
			reg, err := body.NewRegistry(twoBodies())
			Expect(err).NotTo(HaveOccurred())
			Expect(reg.Len()).To(Equal(2))
			Expect(reg.Dim()).To(Equal(2))
			Expect(reg.StateDim()).To(Equal(8))
		})

		It("rejects a single body", func() {
			_, err := body.NewRegistry(twoBodies()[:1])
			var verr *body.ValidationError
			Expect(err).To(BeAssignableToTypeOf(verr))
			Expect(err.Error()).To(ContainSubstring("at least 2"))
		})

		It("rejects zero and negative mass", func() {
			bodies := twoBodies()
			bodies[1].Mass = 0
			_, err := body.NewRegistry(bodies)
			var verr *body.ValidationError
			Expect(err).To(BeAssignableToTypeOf(verr))

			bodies[1].Mass = -3
			_, err = body.NewRegistry(bodies)
			Expect(err).To(BeAssignableToTypeOf(verr))
		})

		It("rejects duplicate names", func() {
			bodies := twoBodies()
			bodies[1].Name = "a"
			_, err := body.NewRegistry(bodies)
			Expect(err).To(MatchError(ContainSubstring("duplicate")))
		})

		It("rejects mixed dimensionality", func() {
			bodies := twoBodies()
			bodies[1].Position = []float64{0.5, 0, -1}
			bodies[1].Velocity = []float64{0, 0, 0}
			_, err := body.NewRegistry(bodies)
			var verr *body.ValidationError
			Expect(err).To(BeAssignableToTypeOf(verr))
		})

		It("rejects unsupported dimensionality", func() {
			bodies := twoBodies()
			for i := range bodies {
				bodies[i].Position = []float64{1}
				bodies[i].Velocity = []float64{1}
			}
			_, err := body.NewRegistry(bodies)
			Expect(err).To(MatchError(ContainSubstring("dimensionality")))
		})
	})

	Describe("state encoding", func() {
		It("lays out positions body-major, then velocities", func() {
			reg, err := body.NewRegistry(twoBodies())
			Expect(err).NotTo(HaveOccurred())

			s := reg.InitialState()
			Expect([]float64(s)).To(Equal([]float64{
				-0.5, 0, 0.5, 0,
				0.02, 0.1, -0.08, -0.06,
			}))
		})

		It("round-trips exactly through Decode", func() {
			bodies := twoBodies()
			reg, err := body.NewRegistry(bodies)
			Expect(err).NotTo(HaveOccurred())

			decoded, err := reg.Decode(reg.InitialState())
			Expect(err).NotTo(HaveOccurred())
			Expect(decoded).To(HaveLen(2))
			for i, bs := range decoded {
				Expect(bs.Name).To(Equal(bodies[i].Name))
				Expect(bs.Position).To(Equal(bodies[i].Position))
				Expect(bs.Velocity).To(Equal(bodies[i].Velocity))
			}
		})

		It("rejects a state vector of the wrong length", func() {
			reg, err := body.NewRegistry(twoBodies())
			Expect(err).NotTo(HaveOccurred())

			_, err = reg.Decode(make(dynamics.State, 7))
			var serr *body.ShapeError
			Expect(err).To(BeAssignableToTypeOf(serr))
		})

		It("does not alias the caller's slices", func() {
			bodies := twoBodies()
			reg, err := body.NewRegistry(bodies)
			Expect(err).NotTo(HaveOccurred())

			bodies[0].Position[0] = 99
			Expect(reg.InitialState()[0]).To(Equal(-0.5))
		})
	})
})
