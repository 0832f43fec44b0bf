package hwconfig

// sample is a complete configuration that passes every rule, with one
// instance of each peripheral kind.
const sample = `{
  "mcu": "STM32F401RE",
  "core-type": "ARM Cortex M4F",
  "Floating point": "True",
  "peripherals": {
    "gpio": [
      {
        "pin": "PA5",
        "direction": "output",
        "pull": "none",
        "speed": "low",
        "alt_function": []
      }
    ],
    "uart": [
      {
        "interface": "USART2",
        "baudrate": 115200,
        "tx_pin": "PA2",
        "rx_pin": "PA3",
        "parity": "none"
      }
    ],
    "i2c": [
      {
        "interface": "I2C1",
        "scl_pin": "PB8",
        "sda_pin": "PB9",
        "speed": "400kHz"
      }
    ],
    "timers": [
      {
        "timer": "TIM2",
        "prescaler": 83,
        "frequency": "1kHz",
        "mode": "pwm"
      }
    ]
  }
}
`

// Sample returns a starter configuration for a Nucleo-style STM32F4 board.
func Sample() []byte {
	return []byte(sample)
}
