package export

import (
	"bytes"
	"encoding/csv"
	"math"
	"path/filepath"
	"strconv"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
	"github.com/san-kum/strapdown/internal/motion"
	"github.com/san-kum/strapdown/internal/sim"
)

func sampleResult() (*sim.Result, motion.Profile) {
	ref := motion.NewConstant(attitude.AngularVelocity{Z: 1})
	res := &sim.Result{
		Times:      []float64{0, 0.5, 1},
		Attitudes:  []quat.Number{ref.Attitude(0), ref.Attitude(0.5), ref.Attitude(1)},
		Rates:      []attitude.AngularVelocity{ref.Rate(0), ref.Rate(0.5), ref.Rate(1)},
		StepsTaken: 2,
	}
	return res, ref
}

func TestWriteCSV(t *testing.T) {
	res, ref := sampleResult()

	var buf bytes.Buffer
	err := WriteCSV(&buf, res, ref)
	test.That(t, err, test.ShouldBeNil)

	rows, err := csv.NewReader(&buf).ReadAll()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(rows), test.ShouldEqual, 4)
	test.That(t, rows[0], test.ShouldResemble, []string{
		"t", "qw", "qx", "qy", "qz", "roll", "pitch", "yaw", "wx", "wy", "wz", "angle_error",
	})

	// Row at t=1: yaw is 1 rad, error is zero.
	yaw, err := strconv.ParseFloat(rows[3][7], 64)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, yaw, test.ShouldAlmostEqual, 1, 1e-8)

	angleErr, err := strconv.ParseFloat(rows[3][11], 64)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, math.Abs(angleErr), test.ShouldBeLessThan, 1e-8)
}

func TestWriteCSVWithoutReference(t *testing.T) {
	res, _ := sampleResult()

	var buf bytes.Buffer
	err := WriteCSV(&buf, res, nil)
	test.That(t, err, test.ShouldBeNil)

	rows, err := csv.NewReader(&buf).ReadAll()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(rows[0]), test.ShouldEqual, 11)
}

func TestWriteCSVFile(t *testing.T) {
	res, ref := sampleResult()
	path := filepath.Join(t.TempDir(), "run.csv")

	err := WriteCSVFile(path, res, ref)
	test.That(t, err, test.ShouldBeNil)

	err = WriteCSVFile(filepath.Join(t.TempDir(), "no", "such", "dir.csv"), res, ref)
	test.That(t, err, test.ShouldNotBeNil)
}
