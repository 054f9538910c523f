// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pigpio

// Daemon status codes -1 to -146 are reported by pigpiod itself. Codes from
// -2000 are produced on the client side of the socket interface.
const (
	Unknown           Kind = 0
	InitFailed        Kind = -1
	BadUserGPIO       Kind = -2
	BadGPIO           Kind = -3
	BadMode           Kind = -4
	BadLevel          Kind = -5
	BadPUD            Kind = -6
	BadPulseWidth     Kind = -7
	BadDutyCycle      Kind = -8
	BadTimer          Kind = -9
	BadMS             Kind = -10
	BadTimeType       Kind = -11
	BadSeconds        Kind = -12
	BadMicros         Kind = -13
	TimerFailed       Kind = -14
	BadWdogTimeout    Kind = -15
	NoAlertFunc       Kind = -16
	BadClkPeriph      Kind = -17
	BadClkSource      Kind = -18
	BadClkMicros      Kind = -19
	BadBufMillis      Kind = -20
	BadDutyRange      Kind = -21
	BadSignum         Kind = -22
	BadPathname       Kind = -23
	NoHandle          Kind = -24
	BadHandle         Kind = -25
	BadIfFlags        Kind = -26
	BadChannel        Kind = -27
	BadSocketPort     Kind = -28
	BadFIFOCommand    Kind = -29
	BadSecoChannel    Kind = -30
	NotInitialised    Kind = -31
	Initialised       Kind = -32
	BadWaveMode       Kind = -33
	BadCfgInternal    Kind = -34
	BadWaveBaud       Kind = -35
	TooManyPulses     Kind = -36
	TooManyChars      Kind = -37
	NotSerialGPIO     Kind = -38
	BadSerialStruct   Kind = -39
	BadSerialBuf      Kind = -40
	NotPermitted      Kind = -41
	SomePermitted     Kind = -42
	BadWVSCCommand    Kind = -43
	BadWVSMCommand    Kind = -44
	BadWVSPCommand    Kind = -45
	BadPulseLen       Kind = -46
	BadScript         Kind = -47
	BadScriptID       Kind = -48
	BadSerOffset      Kind = -49
	GPIOInUse         Kind = -50
	BadSerialCount    Kind = -51
	BadParamNum       Kind = -52
	DupTag            Kind = -53
	TooManyTags       Kind = -54
	BadScriptCmd      Kind = -55
	BadVarNum         Kind = -56
	NoScriptRoom      Kind = -57
	NoMemory          Kind = -58
	SockReadFailed    Kind = -59
	SockWriteFailed   Kind = -60
	TooManyParam      Kind = -61
	ScriptNotReady    Kind = -62
	BadTag            Kind = -63
	BadMICSDelay      Kind = -64
	BadMILSDelay      Kind = -65
	BadWaveID         Kind = -66
	TooManyCBs        Kind = -67
	TooManyOOL        Kind = -68
	EmptyWaveform     Kind = -69
	NoWaveformID      Kind = -70
	I2COpenFailed     Kind = -71
	SerOpenFailed     Kind = -72
	SPIOpenFailed     Kind = -73
	BadI2CBus         Kind = -74
	BadI2CAddr        Kind = -75
	BadSPIChannel     Kind = -76
	BadFlags          Kind = -77
	BadSPISpeed       Kind = -78
	BadSerDevice      Kind = -79
	BadSerSpeed       Kind = -80
	BadParam          Kind = -81
	I2CWriteFailed    Kind = -82
	I2CReadFailed     Kind = -83
	BadSPICount       Kind = -84
	SerWriteFailed    Kind = -85
	SerReadFailed     Kind = -86
	SerReadNoData     Kind = -87
	UnknownCommand    Kind = -88
	SPIXferFailed     Kind = -89
	BadPointer        Kind = -90
	NoAuxSPI          Kind = -91
	NotPWMGPIO        Kind = -92
	NotServoGPIO      Kind = -93
	NotHCLKGPIO       Kind = -94
	NotHPWMGPIO       Kind = -95
	BadHPWMFreq       Kind = -96
	BadHPWMDuty       Kind = -97
	BadHCLKFreq       Kind = -98
	BadHCLKPass       Kind = -99
	HPWMIllegal       Kind = -100
	BadDataBits       Kind = -101
	BadStopBits       Kind = -102
	MsgTooBig         Kind = -103
	BadMallocMode     Kind = -104
	TooManySegs       Kind = -105
	BadI2CSeg         Kind = -106
	BadSMBusCmd       Kind = -107
	NotI2CGPIO        Kind = -108
	BadI2CWlen        Kind = -109
	BadI2CRlen        Kind = -110
	BadI2CCmd         Kind = -111
	BadI2CBaud        Kind = -112
	ChainLoopCnt      Kind = -113
	BadChainLoop      Kind = -114
	ChainCounter      Kind = -115
	BadChainCmd       Kind = -116
	BadChainDelay     Kind = -117
	ChainNesting      Kind = -118
	ChainTooBig       Kind = -119
	Deprecated        Kind = -120
	BadSerInvert      Kind = -121
	BadEdge           Kind = -122
	BadISRInit        Kind = -123
	BadForever        Kind = -124
	BadFilter         Kind = -125
	BadPad            Kind = -126
	BadStrength       Kind = -127
	FileOpenFailed    Kind = -128
	BadFileMode       Kind = -129
	BadFileFlag       Kind = -130
	BadFileRead       Kind = -131
	BadFileWrite      Kind = -132
	FileNotOpenRead   Kind = -133
	FileNotOpenWrite  Kind = -134
	BadFileSeek       Kind = -135
	NoFileMatch       Kind = -136
	NoFileAccess      Kind = -137
	FileIsADir        Kind = -138
	BadShellStatus    Kind = -139
	BadScriptName     Kind = -140
	BadSPIBaud        Kind = -141
	NotSPIGPIO        Kind = -142
	BadEventID        Kind = -143
	CmdInterrupted    Kind = -144
	NotOnBCM2711      Kind = -145
	OnlyOnBCM2711     Kind = -146

	BadSend           Kind = -2000
	BadRecv           Kind = -2001
	BadGetAddrInfo    Kind = -2002
	BadConnect        Kind = -2003
	BadSocket         Kind = -2004
	BadNOIB           Kind = -2005
	DuplicateCallback Kind = -2006
	BadMalloc         Kind = -2007
	BadCallback       Kind = -2008
	NotifyFailed      Kind = -2009
	CallbackNotFound  Kind = -2010
	UnconnectedPi     Kind = -2011
	TooManyPis        Kind = -2012
)

var kindMessages = map[Kind]string{
	InitFailed:        "pigpio initialisation failed",
	BadUserGPIO:       "GPIO not 0-31",
	BadGPIO:           "GPIO not 0-53",
	BadMode:           "mode not 0-7",
	BadLevel:          "level not 0-1",
	BadPUD:            "pud not 0-2",
	BadPulseWidth:     "pulsewidth not 0 or 500-2500",
	BadDutyCycle:      "dutycycle not 0-range (default 255)",
	BadTimer:          "timer not 0-9",
	BadMS:             "ms not 10-60000",
	BadTimeType:       "timetype not 0-1",
	BadSeconds:        "seconds < 0",
	BadMicros:         "micros not 0-999999",
	TimerFailed:       "gpioSetTimerFunc failed",
	BadWdogTimeout:    "timeout not 0-60000",
	NoAlertFunc:       "DEPRECATED",
	BadClkPeriph:      "clock peripheral not 0-1",
	BadClkSource:      "DEPRECATED",
	BadClkMicros:      "clock micros not 1, 2, 4, 5, 8, or 10",
	BadBufMillis:      "buf millis not 100-10000",
	BadDutyRange:      "dutycycle range not 25-40000",
	BadSignum:         "signum not 0-63",
	BadPathname:       "can't open pathname",
	NoHandle:          "no handle available",
	BadHandle:         "unknown handle",
	BadIfFlags:        "ifFlags > 4",
	BadChannel:        "DMA channel not 0-14",
	BadSocketPort:     "socket port not 1024-30000",
	BadFIFOCommand:    "unknown fifo command",
	BadSecoChannel:    "DMA secondary channel not 0-14",
	NotInitialised:    "function called before gpioInitialise",
	Initialised:       "function called after gpioInitialise",
	BadWaveMode:       "waveform mode not 0-1",
	BadCfgInternal:    "bad parameter in gpioCfgInternals call",
	BadWaveBaud:       "baud rate not 50-250K(RX)/50-1M(TX)",
	TooManyPulses:     "waveform has too many pulses",
	TooManyChars:      "waveform has too many chars",
	NotSerialGPIO:     "no bit bang serial read in progress on GPIO",
	BadSerialStruct:   "bad (null) serial structure parameter",
	BadSerialBuf:      "bad (null) serial buf parameter",
	NotPermitted:      "no permission to update GPIO",
	SomePermitted:     "no permission to update one or more GPIO",
	BadWVSCCommand:    "bad WVSC subcommand",
	BadWVSMCommand:    "bad WVSM subcommand",
	BadWVSPCommand:    "bad WVSP subcommand",
	BadPulseLen:       "trigger pulse length not 1-100",
	BadScript:         "invalid script",
	BadScriptID:       "unknown script id",
	BadSerOffset:      "add serial data offset > 30 minute",
	GPIOInUse:         "GPIO already in use",
	BadSerialCount:    "must read at least a byte at a time",
	BadParamNum:       "script parameter id not 0-9",
	DupTag:            "script has duplicate tag",
	TooManyTags:       "script has too many tags",
	BadScriptCmd:      "illegal script command",
	BadVarNum:         "script variable id not 0-149",
	NoScriptRoom:      "no more room for scripts",
	NoMemory:          "can't allocate temporary memory",
	SockReadFailed:    "socket read failed",
	SockWriteFailed:   "socket write failed",
	TooManyParam:      "too many script parameters (> 10)",
	ScriptNotReady:    "script initialising",
	BadTag:            "script has unresolved tag",
	BadMICSDelay:      "bad MICS delay (too large)",
	BadMILSDelay:      "bad MILS delay (too large)",
	BadWaveID:         "non existent wave id",
	TooManyCBs:        "No more CBs for waveform",
	TooManyOOL:        "No more OOL for waveform",
	EmptyWaveform:     "attempt to create an empty waveform",
	NoWaveformID:      "no more waveform ids",
	I2COpenFailed:     "can't open I2C device",
	SerOpenFailed:     "can't open serial device",
	SPIOpenFailed:     "can't open SPI device",
	BadI2CBus:         "bad I2C bus",
	BadI2CAddr:        "bad I2C address",
	BadSPIChannel:     "bad SPI channel",
	BadFlags:          "bad i2c/spi/ser open flags",
	BadSPISpeed:       "bad SPI speed",
	BadSerDevice:      "bad serial device name",
	BadSerSpeed:       "bad serial baud rate",
	BadParam:          "bad i2c/spi/ser parameter",
	I2CWriteFailed:    "I2C write failed",
	I2CReadFailed:     "I2C read failed",
	BadSPICount:       "bad SPI count",
	SerWriteFailed:    "ser write failed",
	SerReadFailed:     "ser read failed",
	SerReadNoData:     "ser read no data available",
	UnknownCommand:    "unknown command",
	SPIXferFailed:     "spi xfer/read/write failed",
	BadPointer:        "bad (NULL) pointer",
	NoAuxSPI:          "no auxiliary SPI on Pi A or B",
	NotPWMGPIO:        "GPIO is not in use for PWM",
	NotServoGPIO:      "GPIO is not in use for servo pulses",
	NotHCLKGPIO:       "GPIO has no hardware clock",
	NotHPWMGPIO:       "GPIO has no hardware PWM",
	BadHPWMFreq:       "invalid hardware PWM frequency",
	BadHPWMDuty:       "hardware PWM dutycycle not 0-1M",
	BadHCLKFreq:       "invalid hardware clock frequency",
	BadHCLKPass:       "need password to use hardware clock 1",
	HPWMIllegal:       "illegal, PWM in use for main clock",
	BadDataBits:       "serial data bits not 1-32",
	BadStopBits:       "serial (half) stop bits not 2-8",
	MsgTooBig:         "socket/pipe message too big",
	BadMallocMode:     "bad memory allocation mode",
	TooManySegs:       "too many I2C transaction segments",
	BadI2CSeg:         "an I2C transaction segment failed",
	BadSMBusCmd:       "SMBus command not supported by driver",
	NotI2CGPIO:        "no bit bang I2C in progress on GPIO",
	BadI2CWlen:        "bad I2C write length",
	BadI2CRlen:        "bad I2C read length",
	BadI2CCmd:         "bad I2C command",
	BadI2CBaud:        "bad I2C baud rate, not 50-500k",
	ChainLoopCnt:      "bad chain loop count",
	BadChainLoop:      "empty chain loop",
	ChainCounter:      "too many chain counters",
	BadChainCmd:       "bad chain command",
	BadChainDelay:     "bad chain delay micros",
	ChainNesting:      "chain counters nested too deeply",
	ChainTooBig:       "chain is too long",
	Deprecated:        "deprecated function removed",
	BadSerInvert:      "bit bang serial invert not 0 or 1",
	BadEdge:           "bad ISR edge, not 1, 1, or 2",
	BadISRInit:        "bad ISR initialisation",
	BadForever:        "loop forever must be last chain command",
	BadFilter:         "bad filter parameter",
	BadPad:            "bad pad number",
	BadStrength:       "bad pad drive strength",
	FileOpenFailed:    "file open failed",
	BadFileMode:       "bad file mode",
	BadFileFlag:       "bad file flag",
	BadFileRead:       "bad file read",
	BadFileWrite:      "bad file write",
	FileNotOpenRead:   "file not open for read",
	FileNotOpenWrite:  "file not open for write",
	BadFileSeek:       "bad file seek",
	NoFileMatch:       "no files match pattern",
	NoFileAccess:      "no permission to access file",
	FileIsADir:        "file is a directory",
	BadShellStatus:    "bad shell return status",
	BadScriptName:     "bad script name",
	BadSPIBaud:        "bad SPI baud rate, not 50-500k",
	NotSPIGPIO:        "no bit bang SPI in progress on GPIO",
	BadEventID:        "bad event id",
	CmdInterrupted:    "command interrupted, Python",
	NotOnBCM2711:      "not available on BCM2711",
	OnlyOnBCM2711:     "only available on BCM2711",
	BadSend:           "failed to send to pigpiod",
	BadRecv:           "failed to receive from pigpiod",
	BadGetAddrInfo:    "failed to find address of pigpiod",
	BadConnect:        "failed to connect to pigpiod",
	BadSocket:         "failed to create socket",
	BadNOIB:           "failed to open notification in band",
	DuplicateCallback: "identical callback exists",
	BadMalloc:         "failed to malloc",
	BadCallback:       "bad callback parameter",
	NotifyFailed:      "failed to create notification thread",
	CallbackNotFound:  "callback not found",
	UnconnectedPi:     "not connected to Pi",
	TooManyPis:        "too many connected Pis",
}
