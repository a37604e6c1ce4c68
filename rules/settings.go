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
package rules

import "fmt"

type SettingsT struct {
	Trace           bool // print every fired rule to stdout
	MaxRewriteSteps int  // step budget for RewriteFully; 0 steps left panics
}

var Settings SettingsT = SettingsT{false, 10000}

// ChangeSettings reads (one arg) or writes (two args) a setting by name;
// with no args it dumps all settings.
func ChangeSettings(a ...interface{}) interface{} {
	if len(a) == 0 {
		return map[string]interface{}{
			"Trace":           Settings.Trace,
			"MaxRewriteSteps": Settings.MaxRewriteSteps,
		}
	} else if len(a) == 1 {
		switch a[0] {
		case "Trace":
			return Settings.Trace
		case "MaxRewriteSteps":
			return Settings.MaxRewriteSteps
		default:
			panic("unknown setting: " + fmt.Sprint(a[0]))
		}
	} else {
		switch a[0] {
		case "Trace":
			Settings.Trace = a[1].(bool)
		case "MaxRewriteSteps":
			Settings.MaxRewriteSteps = a[1].(int)
		default:
			panic("unknown setting: " + fmt.Sprint(a[0]))
		}
		return a[1]
	}
}
