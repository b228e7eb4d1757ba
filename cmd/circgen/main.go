// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// circgen builds a module chaining N calls to a base circuit (given as a
// Bristol or serialized circuit file) through its chaining state, and writes
// the serialized module.  Useful for producing large benchmark modules from a
// single compression circuit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/encryptogroup/fuse/pkg/frontend"
	"github.com/encryptogroup/fuse/pkg/generator"
	"github.com/encryptogroup/fuse/pkg/util/file"
)

func main() {
	var (
		calls   = flag.Uint("calls", 1, "number of chained calls")
		bristol = flag.Bool("bristol", false, "treat the base circuit as a Bristol file")
	)
	//
	flag.Parse()
	//
	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: circgen [flags] base_circuit output%s\n", file.ModuleExtension)
		flag.PrintDefaults()
		os.Exit(1)
	}
	//
	var (
		base []byte
		err  error
	)
	//
	if *bristol {
		builder, berr := frontend.BristolFromFile(flag.Arg(0))
		if berr != nil {
			fmt.Fprintln(os.Stderr, berr)
			os.Exit(1)
		}
		//
		base, err = builder.Finish()
	} else {
		base, err = file.ReadBytes(flag.Arg(0))
	}
	//
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	//
	module, err := generator.ChainedCallModule(base, *calls)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	//
	if err := module.WriteToFile(flag.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
