// Package i18n holds the user-facing Arabic message catalog. Handlers
// translate internal errors into exactly one of these strings; raw
// error text never reaches the client.
package i18n

import "fmt"

const (
	MsgInvalidEmail       = "البريد الإلكتروني غير صالح"
	MsgInvalidName        = "الاسم يجب أن يكون بين 2 و50 حرفًا وبدون رموز خاصة"
	MsgWeakPassword       = "كلمة المرور يجب أن تكون 8 أحرف على الأقل وتحتوي على حرف ورقم"
	MsgInvalidMessage     = "الرسالة فارغة أو تتجاوز الحد المسموح به"
	MsgInvalidURL         = "الرابط غير صالح"
	MsgInvalidSlug        = "المعرّف غير صالح"
	MsgInvalidTitle       = "العنوان غير صالح"
	MsgEmailInUse         = "البريد الإلكتروني مستخدم بالفعل"
	MsgInvalidCredentials = "البريد الإلكتروني أو كلمة المرور غير صحيحة"
	MsgNotAdmin           = "هذا الحساب لا يملك صلاحيات الإدارة"
	MsgUnauthorized       = "يجب تسجيل الدخول أولًا"
	MsgUserBanned         = "تم حظرك من المشاركة في الدردشة"
	MsgChatClosed         = "الدردشة مغلقة حاليًا"
	MsgChatAlreadyOpen    = "الدردشة مفتوحة بالفعل"
	MsgNoOpenChat         = "لا توجد دردشة مفتوحة"
	MsgMessageNotFound    = "الرسالة غير موجودة"
	MsgMessageRedacted    = "تم حذف هذه الرسالة"
	MsgAlreadyBanned      = "المستخدم محظور بالفعل"
	MsgNotBanned          = "المستخدم غير محظور"
	MsgArticleNotFound    = "المقال غير موجود"
	MsgProjectNotFound    = "المشروع غير موجود"
	MsgSlugInUse          = "المعرّف مستخدم بالفعل"
	MsgBackendFailure     = "حدث خطأ غير متوقع، يرجى المحاولة لاحقًا"
)

// MsgRateLimited formats the lockout message with the remaining wait
// in seconds.
func MsgRateLimited(seconds int) string {
	return fmt.Sprintf("محاولات كثيرة جدًا، يرجى المحاولة مرة أخرى بعد %d ثانية", seconds)
}
