package board

// Tapered piece values. Kings carry no material value; the accumulators
// track only the removable pieces.
var PieceScore = [6]Score{
	{100, 166},   // pawn
	{630, 680},   // knight
	{660, 740},   // bishop
	{1000, 1100}, // rook
	{2000, 2150}, // queen
	{0, 0},       // king
}

// psqBonus returns the tapered piece-square bonus for a white piece on sq.
// Black pieces index with the vertically mirrored square and the caller
// negates, keeping the accumulator symmetric under color flip.
func psqBonus(pt PieceType, sq Square) Score {
	return Score{psqMg[pt][sq], psqEg[pt][sq]}
}

// Piece-square tables, A1 first. Rows read rank 1 up to rank 8.
var psqMg = [6][64]int{
	{ // pawn
		0, 0, 0, 0, 0, 0, 0, 0,
		2, 2, 8, 15, 13, 15, 6, -4,
		-7, -12, 9, 12, 26, 18, 4, -18,
		-3, -19, 5, 16, 32, 14, 3, -6,
		10, 0, -10, 1, 9, -2, -10, 4,
		4, -10, -6, 18, -6, -4, -12, -6,
		-6, 6, -2, -10, 4, -13, 8, -6,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // knight
		-141, -74, -60, -59, -59, -60, -74, -141,
		-62, -33, -22, -12, -12, -22, -33, -62,
		-49, -14, 5, 10, 10, 5, -14, -49,
		-28, 6, 32, 39, 39, 32, 6, -28,
		-27, 10, 35, 41, 41, 35, 10, -27,
		-7, 18, 47, 43, 43, 47, 18, -7,
		-54, -22, 3, 30, 30, 3, -22, -54,
		-162, -67, -45, -21, -21, -45, -67, -162,
	},
	{ // bishop
		-43, -4, -6, -19, -19, -6, -4, -43,
		-12, 6, 15, 3, 3, 15, 6, -12,
		-6, 17, -4, 14, 14, -4, 17, -6,
		-4, 9, 20, 31, 31, 20, 9, -4,
		-10, 23, 18, 25, 25, 18, 23, -10,
		-13, 5, 1, 9, 9, 1, 5, -13,
		-14, -11, 4, 0, 0, 4, -11, -14,
		-39, 1, -11, -19, -19, -11, 1, -39,
	},
	{ // rook
		-25, -16, -11, -4, -4, -11, -16, -25,
		-17, -10, -6, 5, 5, -6, -10, -17,
		-20, -9, -1, 2, 2, -1, -9, -20,
		-10, -4, -3, -5, -5, -3, -4, -10,
		-22, -12, -3, 2, 2, -3, -12, -22,
		-18, -2, 5, 10, 10, 5, -2, -18,
		-2, 10, 13, 15, 15, 13, 10, -2,
		-14, -15, -1, 7, 7, -1, -15, -14,
	},
	{ // queen
		2, -4, -4, 3, 3, -4, -4, 2,
		-2, 4, 6, 10, 10, 6, 4, -2,
		-2, 5, 10, 6, 6, 10, 5, -2,
		3, 4, 7, 6, 6, 7, 4, 3,
		0, 11, 10, 4, 4, 10, 11, 0,
		-3, 8, 5, 6, 6, 5, 8, -3,
		-4, 5, 8, 6, 6, 8, 5, -4,
		-2, -2, 1, -2, -2, 1, -2, -2,
	},
	{ // king
		219, 264, 219, 160, 160, 219, 264, 219,
		224, 244, 189, 144, 144, 189, 244, 224,
		157, 208, 136, 97, 97, 136, 208, 157,
		132, 153, 111, 79, 79, 111, 153, 132,
		124, 144, 85, 56, 56, 85, 144, 124,
		99, 117, 65, 25, 25, 65, 117, 99,
		71, 97, 52, 27, 27, 52, 97, 71,
		47, 72, 36, -1, -1, 36, 72, 47,
	},
}

var psqEg = [6][64]int{
	{ // pawn
		0, 0, 0, 0, 0, 0, 0, 0,
		-8, -5, 8, 0, 11, 6, -4, -15,
		-8, -8, -8, 3, 3, 2, -5, -3,
		5, -2, -6, -3, -10, -10, -8, -7,
		8, 4, 3, -4, -4, -4, 11, 7,
		23, 16, 17, 23, 24, 6, 5, 10,
		0, -9, 10, 17, 20, 15, 3, 6,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // knight
		-77, -52, -40, -17, -17, -40, -52, -77,
		-54, -44, -15, 6, 6, -15, -44, -54,
		-32, -22, -6, 23, 23, -6, -22, -32,
		-28, -2, 10, 23, 23, 10, -2, -28,
		-36, -13, 7, 31, 31, 7, -13, -36,
		-41, -35, -13, 14, 14, -13, -35, -41,
		-55, -40, -41, 10, 10, -41, -40, -55,
		-81, -71, -45, -14, -14, -45, -71, -81,
	},
	{ // bishop
		-46, -24, -30, -10, -10, -30, -24, -46,
		-30, -10, -14, 1, 1, -14, -10, -30,
		-13, -1, -2, 8, 8, -2, -1, -13,
		-16, -5, 0, 14, 14, 0, -5, -16,
		-14, -1, -11, 12, 12, -11, -1, -14,
		-24, 5, 3, 5, 5, 3, 5, -24,
		-25, -16, -1, 1, 1, -1, -16, -25,
		-37, -34, -30, -19, -19, -30, -34, -37,
	},
	{ // rook
		-7, -10, -8, -7, -7, -8, -10, -7,
		-10, -7, -1, -2, -2, -1, -7, -10,
		5, -6, -2, -5, -5, -2, -6, 5,
		-5, 1, -7, 6, 6, -7, 1, -5,
		-4, 6, 6, -5, -5, 6, 6, -4,
		5, 1, -6, 8, 8, -6, 1, 5,
		3, 4, 16, -4, -4, 16, 4, 3,
		15, 0, 15, 10, 10, 15, 0, 15,
	},
	{ // queen
		-56, -46, -38, -21, -21, -38, -46, -56,
		-44, -25, -18, -3, -3, -18, -25, -44,
		-31, -15, -7, 2, 2, -7, -15, -31,
		-19, -2, 10, 19, 19, 10, -2, -19,
		-23, -5, 7, 17, 17, 7, -5, -23,
		-31, -15, -10, 1, 1, -10, -15, -31,
		-40, -22, -19, -6, -6, -19, -22, -40,
		-60, -42, -35, -29, -29, -35, -42, -60,
	},
	{ // king
		1, 36, 69, 61, 61, 69, 36, 1,
		43, 81, 107, 109, 109, 107, 81, 43,
		71, 105, 136, 141, 141, 136, 105, 71,
		83, 126, 138, 138, 138, 138, 126, 83,
		77, 133, 160, 160, 160, 160, 133, 77,
		74, 139, 148, 153, 153, 148, 139, 74,
		38, 98, 93, 106, 106, 93, 98, 38,
		9, 47, 59, 63, 63, 59, 47, 9,
	},
}
