package sanitizer

// BrowserSpaceClass is a regexp character class equivalent to \s in browser
// regular expressions. Go's \s only covers ASCII whitespace.
const BrowserSpaceClass = `[\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}]`
