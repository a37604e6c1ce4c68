/*
Copyright (C) 2026  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package expr

// distinguished symbols shared across the kernel, sorted alphabetically
const (
	SymbolD                Symbol = "D"
	SymbolE                Symbol = "E"
	SymbolFalse            Symbol = "False"
	SymbolIndeterminate    Symbol = "Indeterminate"
	SymbolInfinity         Symbol = "Infinity"
	SymbolInteger          Symbol = "Integer"
	SymbolList             Symbol = "List"
	SymbolNull             Symbol = "Null"
	SymbolNumber           Symbol = "Number"
	SymbolPi               Symbol = "Pi"
	SymbolRule             Symbol = "Rule"
	SymbolSymbol           Symbol = "Symbol"
	SymbolTrue             Symbol = "True"
	SymbolUndefined        Symbol = "Undefined"
)
