package live

import "github.com/arloliu/luxdta/value"

// visibilityFields are the menu visibility flags in readout order. The wire
// sends one int8 per flag.
var visibilityFields = []value.Datatype{
	boolean("ID_Visi_NieAnzeigen"),
	boolean("ID_Visi_ImmerAnzeigen"),
	boolean("ID_Visi_Heizung"),
	boolean("ID_Visi_Brauwasser"),
	boolean("ID_Visi_Schwimmbad"),
	boolean("ID_Visi_Kuhlung"),
	boolean("ID_Visi_Lueftung"),
	boolean("ID_Visi_MK1"),
	boolean("ID_Visi_MK2"),
	boolean("ID_Visi_ThermDesinfekt"),
	// 10
	boolean("ID_Visi_Zirkulation"),
	boolean("ID_Visi_KuhlTemp_SolltempMK1"),
	boolean("ID_Visi_KuhlTemp_SolltempMK2"),
	boolean("ID_Visi_KuhlTemp_ATDiffMK1"),
	boolean("ID_Visi_KuhlTemp_ATDiffMK2"),
	boolean("ID_Visi_Service_Information"),
	boolean("ID_Visi_Service_Einstellung"),
	boolean("ID_Visi_Service_Sprache"),
	boolean("ID_Visi_Service_DatumUhrzeit"),
	boolean("ID_Visi_Service_Ausheiz"),
	// 20
	boolean("ID_Visi_Service_Anlagenkonfiguration"),
	boolean("ID_Visi_Service_IBN"),
	boolean("ID_Visi_Service_Parameter_IBN"),
	boolean("ID_Visi_Temp_Vorlauf"),
	boolean("ID_Visi_Temp_Rucklauf"),
	boolean("ID_Visi_Temp_RL_Soll"),
	boolean("ID_Visi_Temp_Ruecklext"),
	boolean("ID_Visi_Temp_Heissgas"),
	boolean("ID_Visi_Temp_Aussent"),
	boolean("ID_Visi_Temp_BW_Ist"),
	// 30
	boolean("ID_Visi_Temp_BW_Soll"),
	boolean("ID_Visi_Temp_WQ_Ein"),
	boolean("ID_Visi_Temp_Kaltekreis"),
	boolean("ID_Visi_Temp_MK1_Vorlauf"),
	boolean("ID_Visi_Temp_MK1VL_Soll"),
	boolean("ID_Visi_Temp_Raumstation"),
	boolean("ID_Visi_Temp_MK2_Vorlauf"),
	boolean("ID_Visi_Temp_MK2VL_Soll"),
	boolean("ID_Visi_Temp_Solarkoll"),
	boolean("ID_Visi_Temp_Solarsp"),
	// 40
	boolean("ID_Visi_Temp_Ext_Energ"),
}
