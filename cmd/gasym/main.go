// SPDX-License-Identifier: MIT

// Command gasym evaluates geometric algebra expressions over an algebra
// specification.
//
//	gasym --spec c3ga.yaml metric
//	gasym --spec c3ga.yaml product gp "no" "2*ni"
//	gasym func exp "0.5*e1^e2" --bind a=1
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
