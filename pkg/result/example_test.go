package result_test

import (
	"fmt"
	"strconv"

	"github.com/ib-77/result/pkg/result"
)

func ExampleResult_String() {
	fmt.Println(result.Success[int, string](1))
	fmt.Println(result.Success[string, int]("1"))
	fmt.Println(result.Failure[int]("boom"))
	fmt.Println(result.EmptySuccess[int, string]())
	// Output:
	// Success(1)
	// Success("1")
	// Failure("boom")
	// Success()
}

func ExampleAndThen() {
	parse := func(s string) result.Result[int, error] {
		v, err := strconv.Atoi(s)
		return result.FromPair(v, err)
	}
	half := func(v int) result.Result[int, error] {
		if v%2 != 0 {
			return result.Failure[int](fmt.Errorf("%d is odd", v))
		}
		return result.Success[int, error](v / 2)
	}

	fmt.Println(result.AndThen(parse("8"), half))
	fmt.Println(result.AndThen(parse("7"), half))
	// Output:
	// Success(4)
	// Failure(7 is odd)
}

func ExampleCatch() {
	res := result.Catch(func() int {
		return result.Map(result.EmptySuccess[int, string](), func(v int) int { return v + 1 }).Unwrap()
	})
	fmt.Println(res.UnwrapFailure())
	// Output:
	// Can't applying a function to a Empty Ok.
}
