// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asm

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// source is the grammar root. Each line holds an optional label definition
// and an optional statement.
type source struct {
	Lines []*line `parser:"@@*"`
}

type line struct {
	Pos   lexer.Position
	Label *string    `parser:"@Label?"`
	Stmt  *statement `parser:"@@?"`
	EOL   bool       `parser:"@EOL"`
}

type statement struct {
	Pos      lexer.Position
	Mnemonic string     `parser:"@Ident"`
	Operands []*operand `parser:"( @@ ( ',' @@ )* )?"`
}

type operand struct {
	Pos      lexer.Position
	Relative *value `parser:"  'rel' '[' @@ ']'"`
	Position *value `parser:"| '[' @@ ']'"`
	Value    *value `parser:"| @@"`
}

type value struct {
	Int   *string `parser:"  @Int"`
	Label *string `parser:"| @Ident"`
}

var asmLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Label", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*:`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `[-+]?[0-9]+`},
	{Name: "Punct", Pattern: `[\[\],]`},
})

var parser = participle.MustBuild[source](
	participle.Lexer(asmLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)
