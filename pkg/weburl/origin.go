package weburl

import "strconv"

// OpaqueOrigin is the serialization of an opaque origin.
const OpaqueOrigin = "null"

// Origin returns the serialized origin of u. blob URLs take the origin of
// the URL in their path; tuple origins are scheme://host[:port]; file URLs
// give "file://"; everything else is opaque.
func (u *URL) Origin() string {
	switch u.Scheme {
	case "blob":
		if len(u.Path) == 0 {
			return OpaqueOrigin
		}

		inner, err := Parse(u.Pathname())
		if err != nil {
			return OpaqueOrigin
		}

		return inner.Origin()
	case "ftp", "gopher", "http", "https", "ws", "wss":
		origin := u.Scheme + "://" + u.Host.String()
		if u.Port != nil {
			origin += ":" + strconv.Itoa(int(*u.Port))
		}

		return origin
	case "file":
		return "file://"
	default:
		return OpaqueOrigin
	}
}
