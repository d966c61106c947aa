package calib

// Calibration curves of the 8208/8209 formats.
var (
	// HeatingCircuit calibrates TRL, TVL, TBW, TFB1 and TRLext.
	HeatingCircuit = mustCurve("heating circuit", []int32{
		1550, 1550, 1550, 1438, 1305, 1205, 1128, 1063, 1007, 959, 916, 878,
		843, 811, 783, 756, 732, 708, 685, 664, 647, 625, 607, 590,
		574, 558, 543, 529, 515, 501, 487, 474, 461, 448, 436, 424,
		412, 401, 390, 379, 368, 358, 348, 338, 328, 318, 308, 299,
		289, 279, 269, 260, 250, 241, 232, 223, 214, 205, 196, 187,
		178, 170, 161, 152, 144, 135, 127, 118, 109, 100, 92, 83,
		74, 65, 56, 47, 38, 29, 20, 11, 1, -7, -17, -26,
		-37, -48, -58, -68, -78, -90, -102, -112, -124, -137, -150, -162,
		-175, -190, -205, -220, -237, -255, -273, -279, -279,
	}, 0, 10, 10)

	// HeatSource calibrates TWQein, TWQaus and TA.
	HeatSource = mustCurve("heat source", []int32{
		1550, 1435, 1133, 971, 862, 781, 718, 664, 618, 579, 545, 514,
		486, 460, 435, 413, 392, 372, 354, 337, 321, 306, 290, 276,
		261, 248, 235, 223, 210, 199, 188, 177, 166, 156, 146, 136,
		127, 117, 108, 99, 90, 82, 73, 65, 57, 48, 40, 32,
		25, 17, 9, 1, -5, -12, -20, -27, -35, -42, -50, -57,
		-63, -70, -77, -85, -92, -100, -107, -113, -120, -127, -134, -142,
		-150, -156, -163, -169, -177, -184, -192, -200, -207, -214, -221, -229,
		-237, -246, -254, -261, -269, -277, -286, -296, -304, -313, -322, -331,
		-342, -352, -362, -372, -384, -396, -408, -411, -411,
	}, 0, 10, 10)

	// HotGas calibrates THG.
	HotGas = mustCurve("hot gas", []int32{
		1550, 1550, 1550, 1550, 1550, 1550, 1550, 1537, 1468, 1409, 1357, 1311,
		1268, 1229, 1193, 1160, 1130, 1100, 1074, 1048, 1024, 1000, 978, 956,
		936, 916, 896, 879, 861, 843, 827, 811, 795, 780, 765, 750,
		737, 723, 709, 695, 681, 668, 655, 646, 630, 617, 605, 593,
		581, 570, 558, 547, 535, 524, 513, 502, 490, 479, 467, 456,
		444, 433, 421, 410, 398, 387, 376, 364, 353, 341, 330, 318,
		306, 294, 282, 269, 256, 243, 230, 217, 203, 189, 175, 161,
		146, 131, 116, 99, 83, 65, 47, 27, 7, -14, -37, -62,
		-90, -120, -155, -194, -240, -300, -378, -411, -411,
	}, 0, 10, 10)

	// Solar calibrates TSS and TSK.
	Solar = mustCurve("solar", []int32{
		1550, 1550, 1550, 1550, 1550, 1550, 1550, 1537, 1468, 1409, 1357, 1311,
		1268, 1229, 1193, 1160, 1130, 1100, 1074, 1048, 1024, 1000, 978, 956,
		936, 916, 896, 879, 861, 843, 827, 811, 795, 780, 765, 750,
		737, 723, 709, 695, 681, 668, 655, 646, 630, 617, 605, 593,
		581, 570, 558, 547, 535, 524, 513, 502, 490, 479, 467, 456,
		444, 433, 421, 410, 398, 387, 376, 365, 354, 343, 331, 319,
		308, 296, 283, 270, 257, 244, 231, 218, 204, 191, 177, 162,
		148, 133, 117, 101, 84, 67, 48, 29, 9, -12, -35, -60,
		-87, -117, -152, -189, -235, -292, -369, -411, -411,
	}, 0, 40, 10)

	// MixedCircuit calibrates TFB2, TFB3 and TEE.
	MixedCircuit = mustCurve("mixed circuit", []int32{
		1550, 1550, 1550, 1438, 1305, 1205, 1128, 1063, 1007, 959, 916, 878,
		843, 811, 783, 756, 732, 708, 685, 664, 647, 625, 607, 590,
		574, 558, 543, 529, 515, 501, 487, 474, 461, 448, 436, 424,
		412, 401, 390, 379, 368, 358, 348, 338, 328, 318, 308, 299,
		289, 279, 269, 260, 250, 241, 232, 223, 214, 205, 196, 187,
		178, 170, 161, 152, 144, 135, 127, 119, 110, 101, 93, 84,
		75, 66, 57, 48, 39, 30, 21, 12, 2, -7, -16, -25,
		-36, -47, -57, -66, -77, -89, -101, -111, -123, -135, -149, -161,
		-174, -189, -204, -219, -235, -254, -271, -279, -279,
	}, 0, 40, 10)
)
