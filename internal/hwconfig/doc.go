// Package hwconfig loads microcontroller hardware configuration documents.
//
// A configuration is a JSON object naming the MCU part, its core type,
// whether it has a floating-point unit, and the peripherals it uses:
//
//	{
//	  "mcu": "STM32F4",
//	  "core-type": "ARM Cortex M4F",
//	  "Floating point": "True",
//	  "peripherals": {
//	    "gpio": [{"pin": "PA5", "direction": "output", "pull": "none", "speed": "high", "alt_function": []}]
//	  }
//	}
//
// [Load] reads and decodes a file. It fails with an error matching exactly
// one of [ErrFileNotFound], [ErrMalformedJSON] or [ErrIO]. The decoded
// [Document] keeps the raw bytes so the document can be echoed back with
// its original key order. Rule checking lives in the validator subpackage.
package hwconfig
