package handler

import "fmt"

const menuHeader = "📋 قائمة أوامر بوت الطباعة:\n"

var menuSections = []struct {
	key   string
	title string
	body  string
}{
	{
		key:   "1",
		title: "أوامر حالة البوت والمعلومات",
		body: "`.نوم` - تبديل وضع النوم (المالك غير متوفر)\n" +
			"`.رد` - تبديل الرد التلقائي المخصص\n" +
			"`.احصائيات` - عرض إحصائيات الطلبات والمستخدمين",
	},
	{
		key:   "2",
		title: "أوامر تعديل الأسعار",
		body: "`.ت1 <قيمة>` - سعر الصفحة للملفات أقل من 50 صفحة\n" +
			"`.ت2 <قيمة>` - سعر الصفحة للملفات 50 صفحة فأكثر\n" +
			"`.ت3 <قيمة>` - سعر الجلاد",
	},
	{
		key:   "3",
		title: "أوامر إدارة المستخدمين",
		body: "`.الغاء <ID>` - تجاهل مستخدم (أو بالرد على رسالته)\n" +
			"`.سماح <ID>` - إلغاء تجاهل مستخدم\n" +
			"`.سماح_للكل` - إلغاء تجاهل جميع المستخدمين",
	},
	{
		key:   "4",
		title: "أوامر متقدمة وإحصائيات",
		body: "`.المجموع` - مجموع المبالغ المؤكدة منذ آخر تقرير يومي\n" +
			"`.معلومات <ID>` - معلومات تسعير مستخدم (أو بالرد على رسالته)\n" +
			"`.ترحيب <نص>` - تغيير رسالة الترحيب",
	},
	{
		key:   "5",
		title: "أمر حفظ الوسائط (.حلو)",
		body:  "حفظ الوسائط غير متاح في هذا الإصدار.",
	},
	{
		key:   "6",
		title: "ملاحظات إضافية",
		body: "يتم إرسال تقرير يومي بمجموع المبالغ المؤكدة إلى المالك كل 24 ساعة.\n" +
			"جميع الإعدادات تعود إلى قيمها الافتراضية عند إعادة تشغيل البوت.",
	},
}

// mainMenuText lists the command categories
func mainMenuText() string {
	text := menuHeader
	for _, s := range menuSections {
		text += fmt.Sprintf("  `.م%s` - %s\n", s.key, s.title)
	}
	text += "\nأرسل الأمر مع الرقم لعرض التفاصيل (مثال: `.م1`)"
	return text
}

// menuSectionText renders one section's detail page
func menuSectionText(key string) string {
	for _, s := range menuSections {
		if s.key == key {
			return fmt.Sprintf("📋 %s:\n%s", s.title, s.body)
		}
	}
	return mainMenuText()
}
