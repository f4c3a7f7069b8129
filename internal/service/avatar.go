package service

import "hash/fnv"

var defaultAvatars = []string{
	"https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
	"https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
	"https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
	"https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
	"https://images.pexels.com/photos/1681010/pexels-photo-1681010.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
}

// DefaultAvatar picks an avatar from the fixed set using FNV-1a (32 bit) of
// the email, so the same email always maps to the same picture.
func DefaultAvatar(email string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return defaultAvatars[h.Sum32()%uint32(len(defaultAvatars))]
}
