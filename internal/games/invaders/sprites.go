package invaders

// 8x8 bitmaps for the alien and the player ship, encoded horizontal-first:
// byte j is pixel row j, bit i of that byte is the pixel at column i.
var (
	alienSprite = [8]byte{0x00, 0x18, 0x3C, 0x7E, 0x5A, 0xFF, 0x54, 0xAA}
	shipSprite  = [8]byte{0x00, 0x18, 0x3C, 0x18, 0x99, 0xBD, 0xFF, 0xE7}
)
