package constant

// AsciiArtLogo is rendered above the root command help output.
const AsciiArtLogo = `
                                           __
    ____  _________ ___  _________ _______/ /_
   / __ \/ ___/ __ ` + "`" + `__ \/ ___/ __ ` + "`" + `/ ___/ __/
  / /_/ / /__/ / / / / / /__/ /_/ (__  ) /_
 / .___/\___/_/ /_/ /_/\___/\__,_/____/\__/
/_/
`
