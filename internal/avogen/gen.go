//go:build avogen
// +build avogen

/*
 * dramstorm - Kernel assembly generator.
 *
 * Copyright 2026, The dramstorm authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Command avogen generates internal/kernel's amd64 assembly. It is not
// part of the main build: this directory is its own module, so
// github.com/mmcloughlin/avo never becomes a dependency of
// github.com/dramstorm/dramstorm itself, and it is run manually to
// refresh the checked-in .s files:
//
//	go run -tags avogen . -out ../kernel
package main

import (
	. "github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/operand"
)

func main() {
	genStoreVec256()
	genStoreVec512()
	genCompareVec256()
	genCompareVec512()
	genStoreFence()
	Generate()
}

func genStoreVec256() {
	TEXT("storeVec256Asm", NOSPLIT, "func(dst *byte, v *byte)")
	Doc("storeVec256Asm issues a single 32-byte non-temporal store.")
	dst := Load(Param("dst"), GP64())
	v := Load(Param("v"), GP64())
	y := YMM()
	VMOVDQU(operand.Mem{Base: v}, y)
	VMOVNTDQ(y, operand.Mem{Base: dst})
	RET()
}

func genStoreVec512() {
	TEXT("storeVec512Asm", NOSPLIT, "func(dst *byte, v *byte)")
	Doc("storeVec512Asm issues a single 64-byte non-temporal store.")
	dst := Load(Param("dst"), GP64())
	v := Load(Param("v"), GP64())
	z := ZMM()
	VMOVDQU64(operand.Mem{Base: v}, z)
	VMOVNTDQ(z, operand.Mem{Base: dst})
	RET()
}

func genCompareVec256() {
	TEXT("compareVec256Asm", NOSPLIT, "func(actual *byte, expected *byte) uint32")
	Doc("compareVec256Asm returns 0 if the two 32-byte vectors are equal, 1 otherwise.")
	Doc("The boolean VPTEST reduction can't recover an exact byte count,")
	Doc("so unlike the wide-512 path this only reports \"differ ⇒ increment\".")
	actual := Load(Param("actual"), GP64())
	expected := Load(Param("expected"), GP64())
	a := YMM()
	e := YMM()
	VMOVDQU(operand.Mem{Base: actual}, a)
	VMOVDQU(operand.Mem{Base: expected}, e)
	cmp := YMM()
	VPCMPEQB(e, a, cmp)
	allOnes := YMM()
	VPCMPEQD(allOnes, allOnes, allOnes)
	notEqual := YMM()
	VPXOR(allOnes, cmp, notEqual)
	VPTEST(notEqual, notEqual)
	result := GP32()
	SETNE(result.As8())
	MOVBLZX(result.As8(), result)
	Store(result, ReturnIndex(0))
	RET()
}

func genCompareVec512() {
	TEXT("compareVec512Asm", NOSPLIT, "func(actual *byte, expected *byte) uint64")
	Doc("compareVec512Asm returns a 64-bit mask with one bit per mismatching byte.")
	Doc("Issues LFENCE before the compare so the load cannot be reordered")
	Doc("across the streaming stores of the previous phase.")
	actual := Load(Param("actual"), GP64())
	expected := Load(Param("expected"), GP64())
	LFENCE()
	a := ZMM()
	e := ZMM()
	VMOVDQU64(operand.Mem{Base: actual}, a)
	VMOVDQU64(operand.Mem{Base: expected}, e)
	k := K()
	VPCMPB(operand.Imm(4) /* NEQ */, e, a, k) // 4 == _MM_CMPINT_NE
	mask := GP64()
	KMOVQ(k, mask)
	Store(mask, ReturnIndex(0))
	RET()
}

func genStoreFence() {
	TEXT("storeFenceAsm", NOSPLIT, "func()")
	Doc("storeFenceAsm issues SFENCE, retiring in-flight non-temporal stores.")
	SFENCE()
	RET()
}
