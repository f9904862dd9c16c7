package types

import (
	"fmt"

	"github.com/lyraproj/typeguard/utils"
)

func Example_scan() {
	const src = `Struct[{name => String, Optional[age] => Integer}, true]`
	tf := func(t token) error {
		fmt.Println(t)
		return nil
	}
	err := scan(utils.NewStringReader(src), tf)
	if err != nil {
		fmt.Println(err)
	}
	// Output:
	//name: 'Struct'
	//leftBracket: '['
	//leftCurlyBrace: '{'
	//identifier: 'name'
	//rocket: '=>'
	//name: 'String'
	//comma: ','
	//name: 'Optional'
	//leftBracket: '['
	//identifier: 'age'
	//rightBracket: ']'
	//rocket: '=>'
	//name: 'Integer'
	//rightCurlyBrace: '}'
	//comma: ','
	//identifier: 'true'
	//rightBracket: ']'
	//end: ''
}

func Example_scanLiterals() {
	const src = `Literal[-3, 2.5, 'hi', "wo\"rld"], /^[a-z]+\/x$/, ...`
	tf := func(t token) error {
		fmt.Println(t)
		return nil
	}
	err := scan(utils.NewStringReader(src), tf)
	if err != nil {
		fmt.Println(err)
	}
	// Output:
	//name: 'Literal'
	//leftBracket: '['
	//integer: '-3'
	//comma: ','
	//float: '2.5'
	//comma: ','
	//string: 'hi'
	//comma: ','
	//string: 'wo"rld'
	//rightBracket: ']'
	//comma: ','
	//regexp: '^[a-z]+/x$'
	//comma: ','
	//ellipsis: '...'
	//end: ''
}
