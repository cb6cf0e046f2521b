// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capi

/*
#include <stddef.h>
*/
import "C"

import (
	"unsafe"

	"github.com/go-rrng/reverse/rand"
)

func doubleSlice(p *C.double, n C.size_t) []float64 {
	if n == 0 {
		return nil
	}
	slice := unsafe.Slice((*float64)(unsafe.Pointer(p)), int(n))
	return slice
}

func intSlice(p *C.int, n C.size_t) []int32 {
	if n == 0 {
		return nil
	}
	slice := unsafe.Slice((*int32)(unsafe.Pointer(p)), int(n))
	return slice
}

//export uniform_real_create
func uniform_real_create(a, b C.double) C.longlong {
	rng, err := rand.NewUniformRealRNG(float64(a), float64(b))
	if err != nil {
		return -1
	}
	return C.longlong(handles.register(KindUniformReal, rng))
}

//export uniform_real_destroy
func uniform_real_destroy(handle C.longlong) {
	handles.release(int64(handle), KindUniformReal)
}

//export uniform_real_seed
func uniform_real_seed(handle C.longlong, seed C.ulonglong) {
	if v, ok := handles.lookup(int64(handle), KindUniformReal); ok {
		v.(*rand.RRNG[float64]).Seed(uint64(seed))
	}
}

//export uniform_real_next
func uniform_real_next(handle C.longlong) C.double {
	if v, ok := handles.lookup(int64(handle), KindUniformReal); ok {
		x, err := v.(*rand.RRNG[float64]).Next()
		if err == nil {
			return C.double(x)
		}
	}
	return C.double(0)
}

//export uniform_real_previous
func uniform_real_previous(handle C.longlong) C.double {
	if v, ok := handles.lookup(int64(handle), KindUniformReal); ok {
		x, err := v.(*rand.RRNG[float64]).Previous()
		if err == nil {
			return C.double(x)
		}
	}
	return C.double(0)
}

//export uniform_real_next_array
func uniform_real_next_array(handle C.longlong, out *C.double, n C.size_t) {
	v, ok := handles.lookup(int64(handle), KindUniformReal)
	if !ok {
		return
	}
	rng := v.(*rand.RRNG[float64])
	dst := doubleSlice(out, n)
	for i := range dst {
		x, err := rng.Next()
		if err != nil {
			return
		}
		dst[i] = x
	}
}

//export uniform_real_previous_array
func uniform_real_previous_array(handle C.longlong, out *C.double, n C.size_t) {
	v, ok := handles.lookup(int64(handle), KindUniformReal)
	if !ok {
		return
	}
	rng := v.(*rand.RRNG[float64])
	dst := doubleSlice(out, n)
	for i := len(dst) - 1; i >= 0; i-- {
		x, err := rng.Previous()
		if err != nil {
			return
		}
		dst[i] = x
	}
}

//export uniform_int_create
func uniform_int_create(a, b C.int) C.longlong {
	rng, err := rand.NewUniformIntRNG(int32(a), int32(b))
	if err != nil {
		return -1
	}
	return C.longlong(handles.register(KindUniformInt, rng))
}

//export uniform_int_destroy
func uniform_int_destroy(handle C.longlong) {
	handles.release(int64(handle), KindUniformInt)
}

//export uniform_int_seed
func uniform_int_seed(handle C.longlong, seed C.ulonglong) {
	if v, ok := handles.lookup(int64(handle), KindUniformInt); ok {
		v.(*rand.RRNG[int32]).Seed(uint64(seed))
	}
}

//export uniform_int_next
func uniform_int_next(handle C.longlong) C.int {
	if v, ok := handles.lookup(int64(handle), KindUniformInt); ok {
		x, err := v.(*rand.RRNG[int32]).Next()
		if err == nil {
			return C.int(x)
		}
	}
	return C.int(0)
}

//export uniform_int_previous
func uniform_int_previous(handle C.longlong) C.int {
	if v, ok := handles.lookup(int64(handle), KindUniformInt); ok {
		x, err := v.(*rand.RRNG[int32]).Previous()
		if err == nil {
			return C.int(x)
		}
	}
	return C.int(0)
}

//export uniform_int_next_array
func uniform_int_next_array(handle C.longlong, out *C.int, n C.size_t) {
	v, ok := handles.lookup(int64(handle), KindUniformInt)
	if !ok {
		return
	}
	rng := v.(*rand.RRNG[int32])
	dst := intSlice(out, n)
	for i := range dst {
		x, err := rng.Next()
		if err != nil {
			return
		}
		dst[i] = x
	}
}

//export uniform_int_previous_array
func uniform_int_previous_array(handle C.longlong, out *C.int, n C.size_t) {
	v, ok := handles.lookup(int64(handle), KindUniformInt)
	if !ok {
		return
	}
	rng := v.(*rand.RRNG[int32])
	dst := intSlice(out, n)
	for i := len(dst) - 1; i >= 0; i-- {
		x, err := rng.Previous()
		if err != nil {
			return
		}
		dst[i] = x
	}
}

//export normal_create
func normal_create(mean, stddev C.double) C.longlong {
	rng, err := rand.NewNormalRNG(float64(mean), float64(stddev))
	if err != nil {
		return -1
	}
	return C.longlong(handles.register(KindNormal, rng))
}

//export normal_destroy
func normal_destroy(handle C.longlong) {
	handles.release(int64(handle), KindNormal)
}

//export normal_seed
func normal_seed(handle C.longlong, seed C.ulonglong) {
	if v, ok := handles.lookup(int64(handle), KindNormal); ok {
		v.(*rand.RRNG[float64]).Seed(uint64(seed))
	}
}

//export normal_next
func normal_next(handle C.longlong) C.double {
	if v, ok := handles.lookup(int64(handle), KindNormal); ok {
		x, err := v.(*rand.RRNG[float64]).Next()
		if err == nil {
			return C.double(x)
		}
	}
	return C.double(0)
}

//export normal_previous
func normal_previous(handle C.longlong) C.double {
	if v, ok := handles.lookup(int64(handle), KindNormal); ok {
		x, err := v.(*rand.RRNG[float64]).Previous()
		if err == nil {
			return C.double(x)
		}
	}
	return C.double(0)
}

//export normal_next_array
func normal_next_array(handle C.longlong, out *C.double, n C.size_t) {
	v, ok := handles.lookup(int64(handle), KindNormal)
	if !ok {
		return
	}
	rng := v.(*rand.RRNG[float64])
	dst := doubleSlice(out, n)
	for i := range dst {
		x, err := rng.Next()
		if err != nil {
			return
		}
		dst[i] = x
	}
}

//export normal_previous_array
func normal_previous_array(handle C.longlong, out *C.double, n C.size_t) {
	v, ok := handles.lookup(int64(handle), KindNormal)
	if !ok {
		return
	}
	rng := v.(*rand.RRNG[float64])
	dst := doubleSlice(out, n)
	for i := len(dst) - 1; i >= 0; i-- {
		x, err := rng.Previous()
		if err != nil {
			return
		}
		dst[i] = x
	}
}

//export exponential_create
func exponential_create(lambda C.double) C.longlong {
	rng, err := rand.NewExponentialRNG(float64(lambda))
	if err != nil {
		return -1
	}
	return C.longlong(handles.register(KindExponential, rng))
}

//export exponential_destroy
func exponential_destroy(handle C.longlong) {
	handles.release(int64(handle), KindExponential)
}

//export exponential_seed
func exponential_seed(handle C.longlong, seed C.ulonglong) {
	if v, ok := handles.lookup(int64(handle), KindExponential); ok {
		v.(*rand.RRNG[float64]).Seed(uint64(seed))
	}
}

//export exponential_next
func exponential_next(handle C.longlong) C.double {
	if v, ok := handles.lookup(int64(handle), KindExponential); ok {
		x, err := v.(*rand.RRNG[float64]).Next()
		if err == nil {
			return C.double(x)
		}
	}
	return C.double(0)
}

//export exponential_previous
func exponential_previous(handle C.longlong) C.double {
	if v, ok := handles.lookup(int64(handle), KindExponential); ok {
		x, err := v.(*rand.RRNG[float64]).Previous()
		if err == nil {
			return C.double(x)
		}
	}
	return C.double(0)
}

//export exponential_next_array
func exponential_next_array(handle C.longlong, out *C.double, n C.size_t) {
	v, ok := handles.lookup(int64(handle), KindExponential)
	if !ok {
		return
	}
	rng := v.(*rand.RRNG[float64])
	dst := doubleSlice(out, n)
	for i := range dst {
		x, err := rng.Next()
		if err != nil {
			return
		}
		dst[i] = x
	}
}

//export exponential_previous_array
func exponential_previous_array(handle C.longlong, out *C.double, n C.size_t) {
	v, ok := handles.lookup(int64(handle), KindExponential)
	if !ok {
		return
	}
	rng := v.(*rand.RRNG[float64])
	dst := doubleSlice(out, n)
	for i := len(dst) - 1; i >= 0; i-- {
		x, err := rng.Previous()
		if err != nil {
			return
		}
		dst[i] = x
	}
}
