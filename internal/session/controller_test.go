package session_test

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/motionlab/internal/clock"
	"github.com/san-kum/motionlab/internal/motion"
	"github.com/san-kum/motionlab/internal/session"
	"github.com/san-kum/motionlab/internal/trajectory"
)

type phaseRecorder struct {
	phases []session.Phase
	ticks  int
	added  []trajectory.Sample
}

func (r *phaseRecorder) OnTick(_ motion.State, added []trajectory.Sample) {
	r.ticks++
	r.added = append(r.added, added...)
}

func (r *phaseRecorder) OnPhase(p session.Phase) { r.phases = append(r.phases, p) }

var _ = Describe("Controller", func() {
	var (
		mt   *clock.ManualTime
		loop *clock.FrameLoop
		rec  *phaseRecorder
		c    *session.Controller
		cfg  motion.Config
		opts []session.Option
	)

	frame := func(d time.Duration) bool {
		mt.Advance(d)
		return loop.Frame()
	}

	BeforeEach(func() {
		mt = clock.NewManualTime(time.Unix(0, 0))
		loop = clock.NewFrameLoop(mt.Now)
		rec = &phaseRecorder{}
		cfg = motion.Config{InitialVelocity: 10, Acceleration: -2, TimeScale: 1}
		opts = nil
	})

	JustBeforeEach(func() {
		var err error
		c, err = session.New(cfg, loop, append(opts, session.WithObserver(rec))...)
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts idle at the origin", func() {
		snap := c.Snapshot()
		Expect(snap.Phase).To(Equal(session.Idle))
		Expect(snap.ElapsedTime).To(BeZero())
		Expect(snap.Position).To(BeZero())
		Expect(snap.Velocity).To(Equal(10.0))
		Expect(snap.ViewportCenter).To(BeZero())
		Expect(snap.Samples).To(BeEmpty())
		Expect(loop.Pending()).To(BeFalse())
	})

	It("rejects an invalid initial config", func() {
		_, err := session.New(motion.Config{TimeScale: 0}, loop)
		Expect(err).To(MatchError(motion.ErrInvalidConfig))
	})

	It("rejects a viewport wider than the bounds", func() {
		_, err := session.New(cfg, loop, session.WithBounds(motion.Bounds{Min: -50, Max: 50}))
		Expect(err).To(HaveOccurred())
	})

	It("rejects a non-positive sample interval", func() {
		_, err := session.New(cfg, loop, session.WithSampleInterval(0))
		Expect(err).To(HaveOccurred())
	})

	Describe("running", func() {
		It("advances by scaled wall time and samples each whole second", func() {
			Expect(c.Start()).To(Succeed())
			Expect(c.Phase()).To(Equal(session.Running))

			Expect(frame(3400 * time.Millisecond)).To(BeTrue())

			snap := c.Snapshot()
			Expect(snap.ElapsedTime).To(BeNumerically("~", 3.4, 1e-9))
			Expect(snap.Position).To(BeNumerically("~", 10*3.4-3.4*3.4, 1e-9))
			Expect(snap.Samples).To(HaveLen(3))
			Expect(snap.Samples[0].Position).To(Equal(9.0))
			Expect(snap.Samples[1].Position).To(Equal(16.0))
			Expect(snap.Samples[2].Position).To(Equal(21.0))
			Expect(rec.added).To(Equal(snap.Samples))
		})

		It("ignores time before the first frame after start", func() {
			mt.Advance(time.Hour)
			Expect(c.Start()).To(Succeed())
			frame(0)
			Expect(c.Snapshot().ElapsedTime).To(BeZero())
		})

		Context("with a time scale", func() {
			BeforeEach(func() {
				cfg.TimeScale = 4
			})

			It("multiplies wall time", func() {
				Expect(c.Start()).To(Succeed())
				frame(250 * time.Millisecond)
				Expect(c.Snapshot().ElapsedTime).To(Equal(1.0))
			})
		})

		It("produces the same samples under jittered and steady frames", func() {
			Expect(c.Start()).To(Succeed())
			for _, ms := range []int{5, 900, 33, 1700, 1, 2300, 400, 1161} {
				frame(time.Duration(ms) * time.Millisecond)
			}
			jittered := c.Snapshot().Samples

			Expect(c.Reset(nil)).To(Succeed())
			Expect(c.Start()).To(Succeed())
			for i := 0; i < 650; i++ {
				frame(10 * time.Millisecond)
			}
			steady := c.Snapshot().Samples

			Expect(jittered).To(HaveLen(6))
			Expect(steady).To(HaveLen(len(jittered)))
			for i := range steady {
				Expect(steady[i].Time).To(Equal(jittered[i].Time))
				Expect(steady[i].Position).To(BeNumerically("~", jittered[i].Position, 1e-9))
			}
		})

		Context("at constant speed", func() {
			BeforeEach(func() {
				cfg = motion.Config{InitialVelocity: 20, TimeScale: 1}
			})

			It("follows the object when it leaves the central band, then holds", func() {
				Expect(c.Start()).To(Succeed())
				frame(3 * time.Second)
				Expect(c.Snapshot().Position).To(Equal(60.0))
				Expect(c.Snapshot().ViewportCenter).To(BeZero())

				frame(time.Second)
				Expect(c.Snapshot().ViewportCenter).To(Equal(80.0))

				frame(2 * time.Second)
				Expect(c.Snapshot().Position).To(Equal(120.0))
				Expect(c.Snapshot().ViewportCenter).To(Equal(80.0))
			})
		})
	})

	Describe("pause", func() {
		It("stops ticks and resumes without replaying the pause", func() {
			Expect(c.Start()).To(Succeed())
			frame(time.Second)
			c.Pause()
			Expect(c.Phase()).To(Equal(session.Paused))
			Expect(loop.Pending()).To(BeFalse())

			Expect(frame(time.Minute)).To(BeFalse())
			Expect(c.Snapshot().ElapsedTime).To(Equal(1.0))

			Expect(c.ToggleRunning()).To(Succeed())
			frame(500 * time.Millisecond)
			Expect(c.Snapshot().ElapsedTime).To(Equal(1.5))
		})

		It("is idempotent and ignored outside Running", func() {
			c.Pause()
			Expect(c.Phase()).To(Equal(session.Idle))
			Expect(c.Start()).To(Succeed())
			c.Pause()
			c.Pause()
			Expect(c.Phase()).To(Equal(session.Paused))
			Expect(rec.phases).To(Equal([]session.Phase{session.Running, session.Paused}))
		})

		It("toggles", func() {
			Expect(c.ToggleRunning()).To(Succeed())
			Expect(c.Phase()).To(Equal(session.Running))
			Expect(c.ToggleRunning()).To(Succeed())
			Expect(c.Phase()).To(Equal(session.Paused))
		})

		It("does nothing when started twice", func() {
			Expect(c.Start()).To(Succeed())
			frame(time.Second)
			Expect(c.Start()).To(Succeed())
			frame(time.Second)
			Expect(c.Snapshot().ElapsedTime).To(Equal(2.0))
		})
	})

	Describe("termination", func() {
		BeforeEach(func() {
			cfg = motion.Config{InitialVelocity: 5, Acceleration: 1, TimeScale: 1}
			opts = []session.Option{session.WithBounds(motion.Bounds{Min: -100, Max: 100})}
		})

		It("finishes on the first tick past the bound and freezes", func() {
			Expect(c.Start()).To(Succeed())

			var before session.Snapshot
			for i := 0; i < 10000 && c.Phase() == session.Running; i++ {
				before = c.Snapshot()
				frame(16 * time.Millisecond)
			}

			final := c.Snapshot()
			Expect(final.Phase).To(Equal(session.Finished))
			Expect(final.Position).To(BeNumerically(">", 100))
			Expect(before.Position).To(BeNumerically("<=", 100))
			Expect(loop.Pending()).To(BeFalse())

			ticks := rec.ticks
			for i := 0; i < 10; i++ {
				frame(16 * time.Millisecond)
			}
			Expect(rec.ticks).To(Equal(ticks))
			Expect(c.Snapshot()).To(Equal(final))

			finished := 0
			for _, p := range rec.phases {
				if p == session.Finished {
					finished++
				}
			}
			Expect(finished).To(Equal(1))
		})

		It("keeps samples only inside the bounds", func() {
			Expect(c.Start()).To(Succeed())
			frame(20 * time.Second)
			snap := c.Snapshot()
			Expect(snap.Phase).To(Equal(session.Finished))
			for _, s := range snap.Samples {
				Expect(motion.InBounds(s.Position, motion.Bounds{Min: -100, Max: 100})).To(BeTrue())
			}
			// 5t + t²/2 <= 100 for t <= 10.
			Expect(snap.Samples).To(HaveLen(10))
		})

		It("restarts from zero when started again", func() {
			Expect(c.Start()).To(Succeed())
			frame(20 * time.Second)
			Expect(c.Phase()).To(Equal(session.Finished))

			Expect(c.Start()).To(Succeed())
			snap := c.Snapshot()
			Expect(snap.Phase).To(Equal(session.Running))
			Expect(snap.ElapsedTime).To(BeZero())
			Expect(snap.Samples).To(BeEmpty())
		})

		It("passes through Idle on restart so observers can reset", func() {
			Expect(c.Start()).To(Succeed())
			frame(20 * time.Second)
			Expect(c.Start()).To(Succeed())
			Expect(rec.phases).To(Equal([]session.Phase{
				session.Running, session.Finished, session.Idle, session.Running,
			}))
		})
	})

	Describe("reset", func() {
		It("is idempotent from every phase", func() {
			drive := map[string]func(){
				"idle":     func() {},
				"running":  func() { _ = c.Start(); frame(3 * time.Second) },
				"paused":   func() { _ = c.Start(); frame(2 * time.Second); c.Pause(); _ = c.PanBy(300) },
				"finished": func() { _ = c.Start(); frame(time.Minute) },
			}
			for name, setup := range drive {
				setup()
				Expect(c.Reset(nil)).To(Succeed(), name)
				first := c.Snapshot()
				Expect(c.Reset(nil)).To(Succeed(), name)
				Expect(c.Snapshot()).To(Equal(first), name)
				Expect(first.Phase).To(Equal(session.Idle), name)
				Expect(first.ElapsedTime).To(BeZero(), name)
				Expect(first.ViewportCenter).To(BeZero(), name)
				Expect(first.Samples).To(BeEmpty(), name)
				Expect(loop.Pending()).To(BeFalse(), name)
			}
		})

		It("applies a new config", func() {
			next := motion.Config{InitialVelocity: -3, Acceleration: 0.5, TimeScale: 2}
			Expect(c.Reset(&next)).To(Succeed())
			Expect(c.Config()).To(Equal(next))
			Expect(c.Snapshot().Velocity).To(Equal(-3.0))

			Expect(c.Start()).To(Succeed())
			frame(time.Second)
			Expect(c.Snapshot().ElapsedTime).To(Equal(2.0))
		})

		It("leaves the session untouched when the config is invalid", func() {
			Expect(c.Start()).To(Succeed())
			frame(1500 * time.Millisecond)
			before := c.Snapshot()

			bad := motion.Config{InitialVelocity: math.NaN(), TimeScale: 1}
			Expect(c.Reset(&bad)).To(MatchError(motion.ErrInvalidConfig))
			Expect(c.Snapshot()).To(Equal(before))
			Expect(c.Phase()).To(Equal(session.Running))

			bad = motion.Config{TimeScale: -1}
			Expect(c.Reset(&bad)).To(MatchError(motion.ErrInvalidConfig))
			Expect(c.Config()).To(Equal(cfg))
		})

		It("cancels the pending tick", func() {
			Expect(c.Start()).To(Succeed())
			Expect(loop.Pending()).To(BeTrue())
			Expect(c.Reset(nil)).To(Succeed())
			Expect(loop.Pending()).To(BeFalse())
			Expect(frame(time.Second)).To(BeFalse())
		})
	})

	Describe("panning", func() {
		It("is refused while running", func() {
			Expect(c.Start()).To(Succeed())
			Expect(c.PanStart()).To(BeFalse())
			Expect(c.PanBy(-600)).To(BeFalse())
			Expect(c.Snapshot().ViewportCenter).To(BeZero())
		})

		It("moves the camera when not running", func() {
			Expect(c.PanStart()).To(BeTrue())
			Expect(c.PanBy(-600)).To(BeTrue())
			c.PanEnd()
			Expect(c.Snapshot().ViewportCenter).To(Equal(100.0))
			Expect(c.View().MeterToPixel(100)).To(Equal(600.0))
		})

		It("keeps the window inside the bounds", func() {
			Expect(c.PanStart()).To(BeTrue())
			Expect(c.PanBy(1e9)).To(BeTrue())
			Expect(c.Snapshot().ViewportCenter).To(Equal(-900.0))
		})

		It("is closed by Start", func() {
			Expect(c.PanStart()).To(BeTrue())
			Expect(c.PanBy(-600)).To(BeTrue())
			Expect(c.Start()).To(Succeed())
			c.Pause()
			Expect(c.PanBy(60)).To(BeTrue())
			Expect(c.Snapshot().ViewportCenter).To(Equal(90.0))
		})
	})
})
