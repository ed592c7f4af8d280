package viewport_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/motionlab/internal/motion"
	"github.com/san-kum/motionlab/internal/viewport"
)

var _ = Describe("Viewport", func() {
	var v *viewport.Viewport

	BeforeEach(func() {
		v = viewport.Default()
	})

	expectInsideBounds := func() {
		b := v.Bounds()
		ExpectWithOffset(1, v.Center()-v.HalfWidth()).To(BeNumerically(">=", b.Min))
		ExpectWithOffset(1, v.Center()+v.HalfWidth()).To(BeNumerically("<=", b.Max))
	}

	Describe("construction", func() {
		It("derives 6 px per meter from 1200 px over 200 m", func() {
			Expect(v.Scale()).To(Equal(6.0))
			Expect(v.HalfWidth()).To(Equal(100.0))
			Expect(v.Center()).To(Equal(0.0))
		})

		It("rejects a span wider than the bounds", func() {
			_, err := viewport.New(1200, 300, motion.Bounds{Min: -100, Max: 100})
			Expect(err).To(MatchError(viewport.ErrSpanExceedsBounds))
		})

		It("rejects non-positive dimensions", func() {
			_, err := viewport.New(0, 200, motion.DefaultBounds())
			Expect(err).To(MatchError(viewport.ErrInvalidDimensions))
			_, err = viewport.New(1200, -1, motion.DefaultBounds())
			Expect(err).To(MatchError(viewport.ErrInvalidDimensions))
		})

		It("accepts a span exactly as wide as the bounds", func() {
			narrow, err := viewport.New(1200, 200, motion.Bounds{Min: -100, Max: 100})
			Expect(err).NotTo(HaveOccurred())
			narrow.SetCenter(50)
			Expect(narrow.Center()).To(Equal(0.0))
		})
	})

	Describe("coordinate transform", func() {
		It("puts the left edge of the window at pixel zero", func() {
			Expect(v.MeterToPixel(-100)).To(Equal(0.0))
			Expect(v.MeterToPixel(0)).To(Equal(600.0))
			Expect(v.MeterToPixel(100)).To(Equal(1200.0))
		})

		It("round-trips meters through pixels", func() {
			rng := rand.New(rand.NewSource(1))
			for i := 0; i < 200; i++ {
				v.SetCenter(rng.Float64()*1800 - 900)
				m := v.Left() + rng.Float64()*2*v.HalfWidth()
				Expect(v.PixelToMeter(v.MeterToPixel(m))).To(BeNumerically("~", m, 1e-9))
			}
		})
	})

	Describe("ClampCenter", func() {
		It("leaves admissible centres unchanged", func() {
			Expect(v.ClampCenter(250)).To(Equal(250.0))
		})

		It("pulls centres back inside the bounds", func() {
			Expect(v.ClampCenter(-995)).To(Equal(-900.0))
			Expect(v.ClampCenter(5000)).To(Equal(900.0))
		})
	})

	Describe("AutoFollow", func() {
		It("holds while the object stays in the central band", func() {
			for _, pos := range []float64{-60, -30, 0, 42, 60} {
				Expect(v.AutoFollow(pos)).To(BeFalse())
				Expect(v.Center()).To(Equal(0.0))
			}
		})

		It("recentres once when the object leaves the band, then holds", func() {
			Expect(v.AutoFollow(61)).To(BeTrue())
			Expect(v.Center()).To(Equal(61.0))

			for pos := 61.0; pos <= 121; pos += 0.5 {
				Expect(v.AutoFollow(pos)).To(BeFalse())
			}
			Expect(v.Center()).To(Equal(61.0))

			Expect(v.AutoFollow(122)).To(BeTrue())
			Expect(v.Center()).To(Equal(122.0))
		})

		It("clamps at the edge of the bounds", func() {
			Expect(v.AutoFollow(990)).To(BeTrue())
			Expect(v.Center()).To(Equal(900.0))
			Expect(v.AutoFollow(999)).To(BeFalse())
			expectInsideBounds()
		})
	})

	Describe("panning", func() {
		It("moves opposite to the drag relative to the gesture start", func() {
			v.PanStart()
			v.PanBy(60)
			Expect(v.Center()).To(Equal(-10.0))
			v.PanBy(120)
			Expect(v.Center()).To(Equal(-20.0))
			v.PanBy(-600)
			Expect(v.Center()).To(Equal(100.0))
			v.PanEnd()
			Expect(v.Panning()).To(BeFalse())
		})

		It("starts a gesture implicitly", func() {
			v.SetCenter(300)
			v.PanBy(-6)
			Expect(v.Center()).To(Equal(301.0))
			Expect(v.Panning()).To(BeTrue())
		})

		It("never shows area outside the bounds", func() {
			v.PanStart()
			v.PanBy(1e7)
			Expect(v.Center()).To(Equal(-900.0))
			v.PanBy(-1e7)
			Expect(v.Center()).To(Equal(900.0))
		})

		It("keeps the window inside the bounds under random pan and follow sequences", func() {
			rng := rand.New(rand.NewSource(42))
			for i := 0; i < 5000; i++ {
				switch rng.Intn(4) {
				case 0:
					v.PanStart()
				case 1:
					v.PanBy(rng.NormFloat64() * 4000)
				case 2:
					v.PanEnd()
				default:
					v.AutoFollow(rng.Float64()*3000 - 1500)
				}
				expectInsideBounds()
			}
		})

		It("is cleared by Reset", func() {
			v.PanStart()
			v.PanBy(-600)
			v.Reset()
			Expect(v.Center()).To(Equal(0.0))
			Expect(v.Panning()).To(BeFalse())
		})
	})

	Describe("Marks", func() {
		It("covers the window plus margin in 5 m steps", func() {
			marks := v.Marks()
			Expect(marks).NotTo(BeEmpty())
			Expect(marks[0].Meter).To(Equal(-115.0))
			Expect(marks[len(marks)-1].Meter).To(Equal(115.0))
			for i := 1; i < len(marks); i++ {
				Expect(marks[i].Meter - marks[i-1].Meter).To(Equal(5.0))
			}
		})

		It("classifies and labels marks", func() {
			byMeter := map[float64]viewport.Mark{}
			for _, mk := range v.Marks() {
				byMeter[mk.Meter] = mk
			}
			Expect(byMeter[100].Kind).To(Equal(viewport.MarkMajor))
			Expect(byMeter[100].Label).To(Equal("100m"))
			Expect(byMeter[-50].Kind).To(Equal(viewport.MarkHalf))
			Expect(byMeter[-50].Label).To(Equal("-50m"))
			Expect(byMeter[20].Kind).To(Equal(viewport.MarkTen))
			Expect(byMeter[20].Label).To(BeEmpty())
			Expect(byMeter[35].Kind).To(Equal(viewport.MarkMinor))
			Expect(byMeter[0].X).To(Equal(600.0))
			Expect(viewport.MarkMajor.Height()).To(Equal(20))
			Expect(viewport.MarkMinor.Height()).To(Equal(6))
		})

		It("stops at the global bounds", func() {
			v.SetCenter(900)
			marks := v.Marks()
			Expect(marks[len(marks)-1].Meter).To(Equal(1000.0))
		})
	})
})
