package types_test

import (
	"fmt"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/typeguard/types"
)

func ExampleParse_list() {
	t, err := types.Parse(`List[Integer]`)
	if err == nil {
		fmt.Println(t)
	} else {
		fmt.Println(err)
	}
	// Output: Array[Integer]
}

func ExampleParse_dict() {
	t, err := types.Parse(`Dict[String, Union[Integer, String]]`)
	if err == nil {
		fmt.Println(t)
	} else {
		fmt.Println(err)
	}
	// Output: Hash[String, Variant[Integer, String]]
}

func ExampleParse_record() {
	t, err := types.Parse(`Record[{name => String, Optional[age] => Integer}]`)
	if err == nil {
		fmt.Println(t)
	} else {
		fmt.Println(err)
	}
	// Output: Struct[{name => String, Optional[age] => Integer}]
}

func ExampleParse_totalRecord() {
	t, err := types.Parse(`Struct[{id => Integer}, true]`)
	if err == nil {
		fmt.Println(t)
	} else {
		fmt.Println(err)
	}
	// Output: Struct[{id => Integer}, true]
}

func ExampleParse_enum() {
	t, err := types.Parse(`Enum[red, green, blue]`)
	if err == nil {
		fmt.Println(t)
	} else {
		fmt.Println(err)
	}
	// Output: Literal['red', 'green', 'blue']
}

func ExampleParse_literal() {
	t, err := types.Parse(`Literal[1, 2.5, 'three', true]`)
	if err == nil {
		fmt.Println(t)
	} else {
		fmt.Println(err)
	}
	// Output: Literal[1, 2.5, 'three', true]
}

func ExampleParse_variadicTuple() {
	t, err := types.Parse(`Tuple[String, Integer, ...]`)
	if err == nil {
		fmt.Println(t)
	} else {
		fmt.Println(err)
	}
	// Output: Tuple[String, Integer, Ellipsis]
}

func ExampleParse_pattern() {
	t, err := types.Parse(`Pattern[/^[a-z]+$/]`)
	if err == nil {
		fmt.Println(t)
	} else {
		fmt.Println(err)
	}
	// Output: Pattern[/^[a-z]+$/]
}

func ExampleParse_callable() {
	t, err := types.Parse(`Callable[Tuple[String], Boolean]`)
	if err == nil {
		fmt.Println(t)
	} else {
		fmt.Println(err)
	}
	// Output: Callable[Tuple[String], Boolean]
}

func ExampleParse_reference() {
	t, err := types.Parse(`Person`)
	if err == nil {
		fmt.Println(t)
	} else {
		fmt.Println(err)
	}
	// Output: Person
}

func ExampleParse_optionalSet() {
	t, err := types.Parse(`Optional[Set[String]]`)
	if err == nil {
		fmt.Println(t)
	} else {
		fmt.Println(err)
	}
	// Output: Optional[Set[String]]
}

func ExampleMustParse() {
	fmt.Println(types.MustParse(`Hash`))
	// Output: Hash
}

func ExampleParse_unterminated() {
	_, err := types.Parse(`List[Integer`)
	if ri, ok := err.(issue.Reported); ok {
		fmt.Println(ri.Code())
	}
	// Output: TG_PARSE_ERROR
}

func ExampleParse_badHashArity() {
	_, err := types.Parse(`Hash[String]`)
	if ri, ok := err.(issue.Reported); ok {
		fmt.Println(ri.Code())
	}
	// Output: TG_ILLEGAL_ARGUMENT_COUNT
}

func ExampleParse_misplacedEllipsis() {
	_, err := types.Parse(`Tuple[..., String]`)
	if err != nil {
		fmt.Println(`error`)
	}
	// Output: error
}
