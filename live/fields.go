package live

import "github.com/arloliu/luxdta/value"

// Field families shared by the live vectors. All of them are read-only;
// writable parameters are wrapped with rw.

const tenth = 0.1

func rw(d value.Datatype) value.Datatype { return d.AsWritable() }

func unknown(name string) value.Datatype { return value.Base(name, false) }
func count(name string) value.Datatype { return value.Base(name, false) }
func level(name string) value.Datatype { return value.Base(name, false) }
func icon(name string) value.Datatype { return value.Base(name, false) }
func boolean(name string) value.Datatype { return value.Boolean(name, false) }

func celsius(name string) value.Datatype { return scaled(name, "°C") }
func kelvin(name string) value.Datatype { return scaled(name, "K") }
func energy(name string) value.Datatype { return scaled(name, "kWh") }
func voltage(name string) value.Datatype { return scaled(name, "V") }
func pressure(name string) value.Datatype { return scaled(name, "%") }

func seconds(name string) value.Datatype { return withUnit(name, "s") }
func flow(name string) value.Datatype { return withUnit(name, "l/h") }
func percent2(name string) value.Datatype { return withUnit(name, "%") }
func speed(name string) value.Datatype { return withUnit(name, "rpm") }
func frequency(name string) value.Datatype { return withUnit(name, "Hz") }
func power(name string) value.Datatype { return withUnit(name, "W") }

func scaled(name, unit string) value.Datatype {
	return value.Scaling(name, false, tenth).WithUnit(unit)
}

func withUnit(name, unit string) value.Datatype {
	return value.Base(name, false).WithUnit(unit)
}

func timestamp(name string) value.Datatype { return value.Custom(name, false, value.Timestamp) }
func ipv4Address(name string) value.Datatype { return value.Custom(name, false, value.IPv4) }
func majorMinorVersion(name string) value.Datatype { return value.Custom(name, false, value.MajorMinor) }
func character(name string) value.Datatype { return value.Custom(name, false, value.Character) }
func errorcode(name string) value.Datatype { return value.Custom(name, false, value.ErrorCode) }

// Selection label sets, index = raw register value.
var (
	heatpumpCodeLabels = []string{
		"ERC", "SW1", "SW2", "WW1", "WW2", "L1I", "L2I", "L1A", "L2A", "KSW",
		"KLW", "SWC", "LWC", "L2G", "WZS", "L1I407", "L2I407", "L1A407", "L2A407", "L2G407",
		"LWC407", "L1AREV", "L2AREV", "WWC1", "WWC2", "L2G404", "WZW", "L1S", "L1H", "L2H",
		"WZWD", "ERC", "ERC", "ERC", "ERC", "ERC", "ERC", "ERC", "ERC", "ERC",
		"WWB_20", "LD5", "LD7", "SW 37_45", "SW 58_69", "SW 29_56", "LD5 (230V)", "LD7 (230 V)", "LD9", "LD5 REV",
		"LD7 REV", "LD5 REV 230V", "LD7 REV 230V", "LD9 REV 230V", "SW 291", "LW SEC", "HMD 2", "MSW 4", "MSW 6", "MSW 8",
		"MSW 10", "MSW 12", "MSW 14", "MSW 17", "MSW 19", "MSW 23", "MSW 26", "MSW 30", "MSW 4S", "MSW 6S",
		"MSW 8S", "MSW 10S", "MSW 12S", "MSW 16S", "MSW2-6S", "MSW4-16", "LD2AG", "LD9V", "MSW3-12", "MSW3-12S",
		"MSW2-9S", "LW 8", "LW 12", "HZ_HMD", "LW V4", "LW SEC 2", "MSW1-4S", "LP5V", "LP8V",
	}

	bivalenceLevelLabels = []string{
		"one compressor allowed to run",
		"two compressors allowed to run",
		"additional heat generator allowed to run",
	}

	operationModeLabels = []string{
		"heating",
		"hot water",
		"swimming pool/solar",
		"evu",
		"defrost",
		"no request",
		"heating external source",
		"cooling",
	}

	switchoffFileLabels = []string{
		"heatpump error",
		"system error",
		"evu lock",
		"operation mode second heat generator",
		"air defrost",
		"maximal usage temperature",
		"minimal usage temperature",
		"lower usage limit",
		"no request",
		"flow rate",
		"PV max",
	}

	statusLine1Labels = []string{
		"heatpump running",
		"heatpump idle",
		"heatpump coming",
		"errorcode slot 0",
		"defrost",
		"waiting on LIN connection",
		"compressor heating up",
		"pump forerun",
	}

	statusLine2Labels = []string{"since", "in"}

	statusLine3Labels = []string{
		"heating",
		"no request",
		"grid switch on delay",
		"cycle lock",
		"lock time",
		"domestic water",
		"info bake out program",
		"defrost",
		"pump forerun",
		"thermal desinfection",
		"cooling",
		"swimming pool/solar",
		"heating external energy source",
		"domestic water external energy source",
		"flow monitoring",
		"second heat generator 1 active",
	}

	secOperationModeLabels = []string{
		"off",
		"cooling",
		"heating",
		"fault",
		"transition",
		"defrost",
		"waiting",
		"waiting",
		"transition",
		"stop",
		"manual",
		"simulation start",
		"evu lock",
	}

	heatingModeLabels = []string{"Automatic", "Second heatsource", "Party", "Holidays", "Off"}
	coolingModeLabels = []string{"Off", "Automatic"}
)

func selection(name string, labels []string) value.Datatype {
	return value.Selection(name, false, labels...)
}

func heatpumpCode(name string) value.Datatype { return selection(name, heatpumpCodeLabels) }
func bivalenceLevel(name string) value.Datatype { return selection(name, bivalenceLevelLabels) }
func operationMode(name string) value.Datatype { return selection(name, operationModeLabels) }
func switchoffFile(name string) value.Datatype { return selection(name, switchoffFileLabels) }
func mainMenuStatusLine1(name string) value.Datatype { return selection(name, statusLine1Labels) }
func mainMenuStatusLine2(name string) value.Datatype { return selection(name, statusLine2Labels) }
func mainMenuStatusLine3(name string) value.Datatype { return selection(name, statusLine3Labels) }
func secOperationMode(name string) value.Datatype { return selection(name, secOperationModeLabels) }
func heatingMode(name string) value.Datatype { return selection(name, heatingModeLabels) }
func hotWaterMode(name string) value.Datatype { return selection(name, heatingModeLabels) }
func coolingMode(name string) value.Datatype { return selection(name, coolingModeLabels) }
