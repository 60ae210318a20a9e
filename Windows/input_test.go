package Windows

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestReadProblem(t *testing.T) {
	Convey("Given well formed input", t, func() {
		p, err := ReadProblem(strings.NewReader("5 3 1\n1 2 3 4 5\n"))
		So(err, ShouldBeNil)
		So(p, ShouldResemble, Problem{N: 5, L: 3, K: 1, Seq: []int64{1, 2, 3, 4, 5}})
		Convey("Its config solves to the expected answer", func() {
			got, err := Solve(p.Seq, p.Config(0, EvictByValue, false))
			So(err, ShouldBeNil)
			So(got, ShouldEqual, 3)
		})
	})
	Convey("Given values spread over lines with negatives and trailing data", t, func() {
		p, err := ReadProblem(strings.NewReader("4 2 0\n3\n-1   4\t-2 99"))
		So(err, ShouldBeNil)
		So(p.Seq, ShouldResemble, []int64{3, -1, 4, -2})
	})
	Convey("Given malformed input", t, func() {
		for _, in := range []string{"", "5 3", "5 3 1\n1 2 3", "5 x 1\n1 2 3 4 5", "2 1 0\n1 2.5", "2147483647 1 0\n1"} {
			_, err := ReadProblem(strings.NewReader(in))
			So(errors.Is(err, ErrMalformedInput), ShouldBeTrue)
		}
	})
	Convey("Given a huge N and few values", t, func() {
		p, err := ReadProblem(strings.NewReader("2147483647 1 0\n1 2 3"))
		So(errors.Is(err, ErrMalformedInput), ShouldBeTrue)
		So(cap(p.Seq), ShouldBeLessThanOrEqualTo, 1<<16)
		So(p.Seq, ShouldResemble, []int64{1, 2, 3})
	})
	Convey("Given parameters out of range", t, func() {
		for _, in := range []string{"3 4 1\n1 2 3", "3 0 1\n1 2 3", "3 2 -1\n1 2 3", "-1 1 1"} {
			_, err := ReadProblem(strings.NewReader(in))
			So(errors.Is(err, ErrBadParameter), ShouldBeTrue)
		}
	})
	Convey("Validate catches a sequence of the wrong length", t, func() {
		err := Problem{N: 3, L: 1, Seq: []int64{1}}.Validate()
		So(errors.Cause(err), ShouldEqual, ErrBadParameter)
	})
}
