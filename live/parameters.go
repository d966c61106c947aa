package live

import (
	"strconv"

	"github.com/arloliu/luxdta/value"
)

const parameterCount = 111

// knownParameters maps parameter positions to their fields. Positions that
// are missing here are filled with Unknown_Parameter_<i>.
var knownParameters = map[int]value.Datatype{
	0:   unknown("ID_Transfert_LuxNet"),
	1:   rw(celsius("ID_Einst_WK_akt")),
	2:   rw(celsius("ID_Einst_BWS_akt")),
	3:   rw(heatingMode("ID_Ba_Hz_akt")),
	4:   rw(hotWaterMode("ID_Ba_Bw_akt")),
	5:   unknown("ID_Ba_Al_akt"),
	6:   unknown("ID_SU_FrkdHz"),
	7:   unknown("ID_SU_FrkdBw"),
	8:   unknown("ID_SU_FrkdAl"),
	9:   unknown("ID_Einst_HReg_akt"),
	10:  unknown("ID_Einst_HzHwMAt_akt"),
	11:  rw(celsius("ID_Einst_HzHwHKE_akt")),
	12:  rw(celsius("ID_Einst_HzHKRANH_akt")),
	13:  rw(celsius("ID_Einst_HzHKRABS_akt")),
	17:  rw(celsius("ID_Einst_HzFtRl_akt")),
	105: celsius("ID_Soll_BWS_akt"),
	108: rw(coolingMode("ID_Einst_BA_Kuehl_akt")),
	110: rw(celsius("ID_Einst_KuehlFreig_akt")),
}

func parameterFields() []value.Datatype {
	fields := make([]value.Datatype, parameterCount)
	for i := range fields {
		if f, ok := knownParameters[i]; ok {
			fields[i] = f
		} else {
			fields[i] = unknown("Unknown_Parameter_" + strconv.Itoa(i))
		}
	}

	return fields
}
