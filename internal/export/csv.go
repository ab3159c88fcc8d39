// Package export writes propagation results to external formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/san-kum/strapdown/internal/attitude"
	"github.com/san-kum/strapdown/internal/motion"
	"github.com/san-kum/strapdown/internal/sim"
)

// WriteCSV streams a result as CSV: time, quaternion components, Tait-Bryan
// angles and body rates, plus the rotation-angle error when a reference
// profile is supplied.
func WriteCSV(w io.Writer, res *sim.Result, ref motion.Profile) error {
	cw := csv.NewWriter(w)

	header := []string{"t", "qw", "qx", "qy", "qz", "roll", "pitch", "yaw", "wx", "wy", "wz"}
	if ref != nil {
		header = append(header, "angle_error")
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "writing csv header")
	}

	for i, t := range res.Times {
		q := res.Attitudes[i]
		rate := res.Rates[i]
		roll, pitch, yaw := attitude.EulerAngles(q)

		row := []string{
			num(t),
			num(q.Real), num(q.Imag), num(q.Jmag), num(q.Kmag),
			num(roll), num(pitch), num(yaw),
			num(rate.X), num(rate.Y), num(rate.Z),
		}
		if ref != nil {
			row = append(row, num(attitude.AngleBetween(ref.Attitude(t), q)))
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "writing csv row %d", i)
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing csv")
}

// WriteCSVFile is WriteCSV against a freshly created file.
func WriteCSVFile(path string, res *sim.Result, ref motion.Profile) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating csv file")
	}
	defer f.Close()
	return WriteCSV(f, res, ref)
}

func num(v float64) string {
	return fmt.Sprintf("%.9g", v)
}
