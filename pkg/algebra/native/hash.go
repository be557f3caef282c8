package native

import (
	"cmp"
	"encoding/binary"
	"math"
	"reflect"

	"github.com/spaolacci/murmur3"
)

func hashBytes(bs []byte) int {
	return int(murmur3.Sum64(bs))
}

func hashString(s string) int {
	return hashBytes([]byte(s))
}

func hashOrdered[T cmp.Ordered](v T) int {
	var (
		rv  = reflect.ValueOf(v)
		buf [8]byte
	)
	switch rv.Kind() {
	case reflect.String:
		return hashString(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		binary.LittleEndian.PutUint64(buf[:], rv.Uint())
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == 0 { // -0 == +0
			f = 0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
	}
	return hashBytes(buf[:])
}
