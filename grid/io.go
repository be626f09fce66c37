package grid

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/maseology/mmio"
)

// ReadGDEF imports a grid definition file: OE/ON/ROT/NR/NC/CS, one value
// per line, cell size optionally prefixed 'U' for uniform grids
func ReadGDEF(fp string) (*Definition, error) {
	a, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf("ReadGDEF: %v", err)
	}
	if len(a) < 6 {
		return nil, fmt.Errorf("ReadGDEF: %s: incomplete header", fp)
	}

	stErr := make([]string, 0)
	errfunc := func(v string, err error) {
		stErr = append(stErr, fmt.Sprintf("     failed to read '%v': %v", v, err))
	}

	oe, err := strconv.ParseFloat(a[0], 64)
	if err != nil {
		errfunc("OE", err)
	}
	on, err := strconv.ParseFloat(a[1], 64)
	if err != nil {
		errfunc("ON", err)
	}
	rot, err := strconv.ParseFloat(a[2], 64)
	if err != nil {
		errfunc("ROT", err)
	}
	nr, err := strconv.ParseInt(a[3], 10, 32)
	if err != nil {
		errfunc("NR", err)
	}
	nc, err := strconv.ParseInt(a[4], 10, 32)
	if err != nil {
		errfunc("NC", err)
	}
	cs, err := strconv.ParseFloat(a[5], 64)
	if err != nil {
		if a[5][0] == 'U' {
			cs, err = strconv.ParseFloat(a[5][1:], 64)
			if err != nil {
				errfunc("CS", err)
			}
		} else {
			errfunc("CS", err)
		}
	}

	if len(stErr) > 0 {
		msg := fmt.Sprintf("ReadGDEF errors: %s", fp)
		for _, v := range stErr {
			msg += "\n" + v
		}
		return nil, fmt.Errorf("%s", msg)
	}
	if rot != 0. {
		return nil, fmt.Errorf("ReadGDEF: %s: rotated grids not supported", fp)
	}

	return &Definition{
		Oe: oe, On: on,
		Cwx: cs, Cwy: cs,
		NoData: -9999.,
		Nrow:   int(nr), Ncol: int(nc),
	}, nil
}

// LoadReal reads a little-endian float32 binary grid (.bil) into a Real
func LoadReal(gd *Definition, fp string) (*Real, error) {
	buf := mmio.OpenBinary(fp)
	f32 := make([]float32, gd.Ncells())
	if err := binary.Read(buf, binary.LittleEndian, f32); err != nil {
		return nil, fmt.Errorf("LoadReal: %s: %v", fp, err)
	}
	r := &Real{GD: gd, A: make([]float64, gd.Ncells())}
	for i, v := range f32 {
		r.A[i] = float64(v)
	}
	return r, nil
}

// ToBil writes the grid as little-endian float32 with an ESRI-style .hdr companion
func (r *Real) ToBil(fp string) error {
	f32 := make([]float32, len(r.A))
	for i, v := range r.A {
		f32[i] = float32(v)
	}
	b := make([]byte, 0, 4*len(f32))
	for _, v := range f32 {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
	}
	if err := os.WriteFile(fp, b, 0644); err != nil {
		return fmt.Errorf("ToBil: %v", err)
	}
	return r.GD.ToHDR(mmio.RemoveExtension(fp) + ".hdr")
}

// ToHDR writes an ESRI-style raw binary header
func (gd *Definition) ToHDR(fp string) error {
	lns := []string{
		"BYTEORDER      I",
		"LAYOUT         BIL",
		fmt.Sprintf("NROWS          %d", gd.Nrow),
		fmt.Sprintf("NCOLS          %d", gd.Ncol),
		"NBANDS         1",
		"NBITS          32",
		"PIXELTYPE      FLOAT",
		fmt.Sprintf("ULXMAP         %f", gd.Oe+gd.Cwx/2.),
		fmt.Sprintf("ULYMAP         %f", gd.On-gd.Cwy/2.),
		fmt.Sprintf("XDIM           %f", gd.Cwx),
		fmt.Sprintf("YDIM           %f", gd.Cwy),
		fmt.Sprintf("NODATA         %f", gd.NoData),
	}
	if err := mmio.WriteStrings(fp, lns); err != nil {
		return fmt.Errorf("ToHDR: %v", err)
	}
	return nil
}
