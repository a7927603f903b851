package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRegister(t *testing.T) {
	Convey("Given a new register", t, func() {
		reg := NewRegister()

		So(reg.Len(), ShouldEqual, 1)

		m, err := reg.MeasurementOf(0)
		So(err, ShouldBeNil)
		So(m, ShouldEqual, Unmeasured)

		Convey("When adding qubits", func() {
			So(reg.AddQubit(), ShouldBeNil)
			So(reg.AddQubit(), ShouldBeNil)

			Convey("It should grow both sequences together", func() {
				So(reg.Len(), ShouldEqual, 3)
				So(reg.Measurements(), ShouldResemble, []Outcome{Unmeasured, Unmeasured, Unmeasured})

				q, err := reg.Get(2)
				So(err, ShouldBeNil)
				So(q.Alpha(), ShouldEqual, float32(1))
			})

			Convey("It should shrink back to one default qubit on reset", func() {
				q, err := reg.GetMutable(0)
				So(err, ShouldBeNil)
				So(q.ApplyPauliX(), ShouldBeNil)
				So(reg.SetMeasurement(0, One), ShouldBeNil)

				So(reg.Reset(), ShouldBeNil)
				So(reg.Len(), ShouldEqual, 1)
				So(reg.Measurements(), ShouldResemble, []Outcome{Unmeasured})

				first, err := reg.Get(0)
				So(err, ShouldBeNil)
				So(first.Alpha(), ShouldEqual, float32(1))
			})
		})

		Convey("When mutating through GetMutable", func() {
			q, err := reg.GetMutable(0)
			So(err, ShouldBeNil)
			So(q.ApplyHadamard(), ShouldBeNil)

			Convey("It should change the stored qubit", func() {
				stored, err := reg.Get(0)
				So(err, ShouldBeNil)
				p0, _ := stored.Probabilities()
				So(p0, ShouldAlmostEqual, 0.5, tolerance)
			})

			Convey("It should not be affected by changes to a copy", func() {
				copied, err := reg.Get(0)
				So(err, ShouldBeNil)
				So(copied.ApplyPauliX(), ShouldBeNil)

				stored, _ := reg.Get(0)
				So(stored.Alpha(), ShouldAlmostEqual, 0.7071068, tolerance)
			})
		})

		Convey("When recording measurements", func() {
			So(reg.SetMeasurement(0, One), ShouldBeNil)

			m, err := reg.MeasurementOf(0)
			So(err, ShouldBeNil)
			So(m, ShouldEqual, One)
		})

		Convey("When addressing slots outside the register", func() {
			_, err := reg.Get(1)
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)

			var indexErr *IndexError
			So(errors.As(err, &indexErr), ShouldBeTrue)
			So(indexErr.Index, ShouldEqual, 1)
			So(indexErr.Length, ShouldEqual, 1)
			So(indexErr.Step, ShouldEqual, -1)

			_, err = reg.GetMutable(-1)
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)

			So(errors.Is(reg.SetMeasurement(3, Zero), ErrIndexOutOfRange), ShouldBeTrue)

			_, err = reg.MeasurementOf(3)
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
		})

		Convey("When the register is held by a run", func() {
			So(reg.hold(), ShouldBeTrue)
			So(reg.hold(), ShouldBeFalse)

			Convey("It should refuse to grow or reset", func() {
				So(errors.Is(reg.AddQubit(), ErrRegisterBusy), ShouldBeTrue)
				So(errors.Is(reg.Reset(), ErrRegisterBusy), ShouldBeTrue)
				So(reg.Len(), ShouldEqual, 1)
			})

			Convey("It should accept growth once released", func() {
				reg.release()
				So(reg.AddQubit(), ShouldBeNil)
				So(reg.Len(), ShouldEqual, 2)
			})
		})

		Convey("When dumping", func() {
			So(reg.Dump(), ShouldContainSubstring, "alpha")
		})
	})

	Convey("Given a sized register constructor", t, func() {
		reg, err := NewRegisterOf(4)
		So(err, ShouldBeNil)
		So(reg.Len(), ShouldEqual, 4)
		So(len(reg.Qubits()), ShouldEqual, 4)

		_, err = NewRegisterOf(0)
		So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
	})
}
