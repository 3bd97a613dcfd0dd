package bigint_test

import (
	"errors"
	"fmt"

	"github.com/agbru/bigcalc/internal/bigint"
)

func ExampleInt_Add() {
	x := bigint.MustParse("999")
	x.Add(bigint.NewInt(1)).Mul(bigint.NewInt(-3))
	fmt.Println(x)
	// Output: -3000
}

func ExampleQuoRem() {
	q, r, err := bigint.QuoRem(bigint.NewInt(-7), bigint.NewInt(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(q, r)
	// Output: -3 -1
}

func ExampleQuo_divisionByZero() {
	_, err := bigint.Quo(bigint.NewInt(5), bigint.NewInt(0))
	fmt.Println(err, errors.Is(err, bigint.ErrDivisionByZero))
	// Output: bigint: division by zero true
}

func ExamplePow() {
	fmt.Println(bigint.Pow(bigint.NewInt(2), bigint.NewInt(100)))
	// Output: 1267650600228229401496703205376
}

func ExampleGCD() {
	fmt.Println(bigint.GCD(bigint.MustParse("-84"), bigint.MustParse("36")))
	// Output: 12
}
